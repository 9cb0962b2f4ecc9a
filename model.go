package schemauml

const (
	missingDescription = "MISSING"
	unknownType        = "unknown"
	enumAttributeType  = "enum"

	MultiplicityOne  = "1"
	MultiplicityMany = "*"
)

type ClassKind int

const (
	KindPlain ClassKind = iota
	KindEnum
	KindAbstract
)

func (k ClassKind) String() string {
	switch k {
	case KindPlain:
		return "class"
	case KindEnum:
		return "enum"
	case KindAbstract:
		return "abstract"
	default:
		return "unknown"
	}
}

// Attribute is one property of a class.
type Attribute struct {
	Name        string
	Type        string
	Format      string
	Description string
	Example     string
	Required    bool
	// Ref is the raw $ref of the property, if any. It never produces an edge by itself.
	Ref string
}

// Class is one diagram class. Classes come either from a schema definition
// or from a synthesized polymorphic choice group (KindAbstract).
type Class struct {
	Name        string
	Kind        ClassKind
	Attributes  []Attribute
	Description string
}

// AddAttribute appends an attribute, keeping declaration order.
func (c *Class) AddAttribute(attr Attribute) {
	c.Attributes = append(c.Attributes, attr)
}

type RelationKind int

const (
	RelationAggregation RelationKind = iota
	RelationGeneralization
	// RelationComposition and RelationAssociation are understood by the renderers
	// but never produced by Compile.
	RelationComposition
	RelationAssociation
)

func (k RelationKind) String() string {
	switch k {
	case RelationAggregation:
		return "aggregation"
	case RelationGeneralization:
		return "generalization"
	case RelationComposition:
		return "composition"
	case RelationAssociation:
		return "association"
	default:
		return "unknown"
	}
}

// Relationship relates two existing classes. Generalization edges point from
// the child (Source) to the parent (Target) and carry no label or multiplicity.
type Relationship struct {
	Source             *Class
	Target             *Class
	Kind               RelationKind
	Label              string
	MultiplicitySource string
	MultiplicityTarget string
}

// Graph is the result of Compile.
type Graph struct {
	// Classes in registration order: schema definitions first, in document and
	// declaration order, then synthesized abstract classes as they were created.
	Classes       []*Class
	Relationships []Relationship

	index map[string]*Class
}

// Class looks up a class by name.
func (g *Graph) Class(name string) (*Class, bool) {
	c, ok := g.index[name]
	return c, ok
}
