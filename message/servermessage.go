package message

import (
    "encoding/json"
    "errors"
    "fmt"
    "time"
)

type SType int
const (
    STypeNone SType = iota
    InternalError
    YourSeat
    NotifyState
    NotifyEvent
    NotifyEventError
    HotDeploy
)
var STypeNames = map[SType]string {
    STypeNone: "STypeNone",
    InternalError: "InternalError",
    YourSeat: "YourSeat",
    NotifyState: "NotifyState",
    NotifyEvent: "NotifyEvent",
    NotifyEventError: "NotifyEventError",
    HotDeploy: "HotDeploy",
}

func (t SType) String() string {
    return fmt.Sprintf("%s", STypeNames[t])
}

type Server struct {
    SType SType
    Time time.Time
    Data interface{}
}

// Same two-stage decode as UnmarshalClient: the outer unmarshal leaves
// Data as a map, the second pass types it by SType.
func UnmarshalServer(bytes []byte) (Server, error) {
    var s Server
    err := json.Unmarshal(bytes, &s)
    if err != nil {
        return Server{}, err
    }
    var moreBytes []byte
    moreBytes, err = json.Marshal(s.Data)
    if err != nil {
        return Server{}, err
    }

    switch t := s.SType; t {
        case InternalError:
            var d InternalErrorData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case YourSeat:
            var d YourSeatData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case NotifyState:
            var d NotifyStateData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case NotifyEvent:
            var d NotifyEventData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case NotifyEventError:
            var d NotifyEventErrorData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case HotDeploy:
            var d HotDeployData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        default:
            return Server{}, errors.New(fmt.Sprintf("Unknown SType: %d", s.SType))
    }
    if err != nil {
        return Server{}, err
    }
    return s, nil
}
