package models

// CardAction tags the effect a drawn card applies.
type CardAction string

const (
	CardMoney           CardAction = "MONEY"
	CardGlobalCollect   CardAction = "GLOBAL_COLLECT"
	CardMoveRelative    CardAction = "MOVE_RELATIVE"
	CardMoveTo          CardAction = "MOVE_TO"
	CardJail            CardAction = "JAIL"
	CardNearestRailroad CardAction = "NEAREST_RAILROAD"
)

// Card is one entry of a static action-card deck. Value is the amount for
// money effects, the delta for relative moves and the target index for
// absolute moves; it is unused for JAIL and NEAREST_RAILROAD.
type Card struct {
	Text   string     `json:"text"`
	Action CardAction `json:"action"`
	Value  int        `json:"value"`
}
