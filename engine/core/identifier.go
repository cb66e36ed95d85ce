package core

// IdentifierPool hands out small integer ids and maps them back to their
// owners. Scene nodes use it so that ids stay dense within a loaded document.
type IdentifierPool struct {
	owners []interface{}
}

func NewIdentifierPool(capacity int) *IdentifierPool {
	return &IdentifierPool{owners: make([]interface{}, 0, capacity)}
}

func (p *IdentifierPool) Acquire(owner interface{}) uint32 {
	p.owners = append(p.owners, owner)
	return uint32(len(p.owners)) - 1
}

func (p *IdentifierPool) Owner(id uint32) interface{} {
	if id >= uint32(len(p.owners)) {
		return nil
	}
	return p.owners[id]
}
