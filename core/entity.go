package core

// Entity is the stable identifier of an agent, assigned sequentially from 1
type Entity uint64
