package component

// Name is a debug label shown by the sandbox and simulation logs.
type Name string

var NameComponent = NewComponent[Name]()

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
