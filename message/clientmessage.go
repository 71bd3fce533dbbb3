package message

import (
    "fmt"
    "errors"
    "encoding/json"
    "local/brass/game"
)

type CType int
const (
    CTypeNone CType = iota
    DoEvent
    RequestState
)
var CTypeNames = map[CType]string {
    CTypeNone: "CTypeNone",
    DoEvent: "DoEvent",
    RequestState: "RequestState",
}
func (t CType) String() string {
    return fmt.Sprintf("%s", CTypeNames[t])
}

// Client messages arrive as {CType, Data} with Data left generic by the
// first unmarshal; we remarshal Data and decode it a second time into the
// concrete type the CType names.
func UnmarshalClient(bytes []byte) (Client, error) {
    var c Client
    err := json.Unmarshal(bytes, &c)
    if err != nil {
        return Client{}, err
    }
    var moreBytes []byte
    moreBytes, err = json.Marshal(c.Data)
    if err != nil {
        return Client{}, err
    }

    switch t := c.CType; t {
        case DoEvent:
            var d game.Event
            err = json.Unmarshal(moreBytes, &d)
            c.Data = d
        case RequestState:
            var d RequestStateData
            err = json.Unmarshal(moreBytes, &d)
            c.Data = d
        default:
            return Client{}, errors.New(fmt.Sprintf("Unknown CType: %d", c.CType))
    }
    if err != nil {
        return Client{}, err
    }
    return c, nil
}

type Client struct {
    CType CType
    Data interface{}
}

type RequestStateData struct {}

func NewDoEvent(e game.Event) Client {
    return Client{
        CType: DoEvent,
        Data: e,
    }
}

func NewRequestState() Client {
    return Client{
        CType: RequestState,
        Data: RequestStateData{},
    }
}
