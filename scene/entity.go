package scene

// Entity identifies one scene object. It carries no data of its own; all
// state lives in the components attached to it through a Registry.
type Entity uint64

// Null is the reserved "no entity" id. Registry.Create never returns it, and
// hierarchy links use it to mark a missing parent, sibling or child.
const Null Entity = 0
