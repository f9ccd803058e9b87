package component

// Kind tags what an entity is. Every live handle carries exactly one kind.
type Kind uint8

const (
	KindNone Kind = iota
	KindCell
	KindWalker
	KindBuilding
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindCell:
		return "cell"
	case KindWalker:
		return "walker"
	case KindBuilding:
		return "building"
	case KindProjectile:
		return "projectile"
	default:
		return "none"
	}
}
