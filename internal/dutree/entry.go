package dutree

// Kind tells leaves apart from expanded directories.
type Kind uint8

const (
	// KindLeaf is a file, a directory that was not expanded, or a synthetic node.
	KindLeaf Kind = iota
	// KindDirectory is an expanded directory with an ordered (possibly empty) child list.
	KindDirectory
)

const (
	// AggregatedName labels the node summing all below-threshold children.
	AggregatedName = "<aggregated>"
	// CollectionName labels the synthetic root when several paths are given.
	CollectionName = "<collection>"
)

// Entry is a node of the size tree. Entries are not modified once built.
type Entry struct {
	// Name is the final path component or a synthetic label.
	Name string
	// Size is the total in bytes including all descendants.
	Size uint64
	// Color is an SGR parameter string, empty when uncolored.
	Color string
	// Kind selects between leaf and directory.
	Kind Kind
	// Children are sorted by descending size. Nil for leaves.
	Children []Entry
}

// Expandable reports whether the entry carries a child list.
func (e Entry) Expandable() bool {
	return e.Kind == KindDirectory
}

func leaf(name string, size uint64, color string) Entry {
	return Entry{Name: name, Size: size, Color: color, Kind: KindLeaf}
}
