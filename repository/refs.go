package repository

// Refs pairs a collection handle with a factory for its document handles.
type Refs struct {
	// Col dipakai untuk list dan create
	Col CollectionRef
	// Doc dipakai untuk get, update dan delete
	Doc func(id string) DocumentRef
}

// NewRefs builds the handles for collection name. Nothing touches the store
// until an operation is issued on one of them.
func NewRefs(s Store, name string) Refs {
	return Refs{
		Col: s.Collection(name),
		Doc: func(id string) DocumentRef { return s.Doc(name, id) },
	}
}
