// internal/types/types.go
package types

// EntityID — стабильный дескриптор сущности в арене. Ноль означает "нет сущности".
type EntityID uint32

// None is the zero handle; no live entity ever carries it.
const None EntityID = 0
