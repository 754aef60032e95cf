package component

// Persistent marks a card whose pose is saved under Key when Dirty.
type Persistent struct {
	Key   string
	Dirty bool
}

var PersistentComponent = NewComponent[Persistent]()
