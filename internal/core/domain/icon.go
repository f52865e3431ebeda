package domain

type IconKind string

const (
	IconKindVector   IconKind = "vector"
	IconKindResource IconKind = "resource"
)

// Icon is either a named vector icon or a bundled image resource.
type Icon struct {
	Kind IconKind
	Name string
}

func VectorIcon(name string) Icon {
	return Icon{Kind: IconKindVector, Name: name}
}

func ResourceIcon(name string) Icon {
	return Icon{Kind: IconKindResource, Name: name}
}

func (i Icon) IsValid() bool {
	return (i.Kind == IconKindVector || i.Kind == IconKindResource) && i.Name != ""
}
