package registry

// Variable names bound when expressions run inside a dimension chain or a
// shaping function.
const (
	VarList   = "list"
	VarEntity = "entity"
	VarArgs   = "aviatorArgs"
)

// TargetKey is the record key join reads when it is handed records instead of
// strings.
const TargetKey = "TARGET"
