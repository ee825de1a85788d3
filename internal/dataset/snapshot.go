package dataset

import "github.com/google/uuid"

// Snapshot is an immutable, versioned view of the population. Readers and
// evaluations hold a snapshot; appends never mutate one in place, they
// produce a successor with a fresh version.
type Snapshot struct {
	Version   string
	Customers []Customer
}

func NewSnapshot(customers []Customer) *Snapshot {
	return &Snapshot{
		Version:   uuid.NewString(),
		Customers: customers,
	}
}

// WithAppended returns a new snapshot containing all current customers plus c.
// The receiver's backing slice is never shared for writes.
func (s *Snapshot) WithAppended(c Customer) *Snapshot {
	next := make([]Customer, 0, len(s.Customers)+1)
	next = append(next, s.Customers...)
	next = append(next, c)
	return NewSnapshot(next)
}

func (s *Snapshot) Size() int {
	return len(s.Customers)
}

// MaxID returns the highest customer ID in the snapshot, 0 when empty.
func (s *Snapshot) MaxID() int64 {
	var max int64
	for _, c := range s.Customers {
		if c.ID > max {
			max = c.ID
		}
	}
	return max
}

// FindByID returns the customer with the given ID.
func (s *Snapshot) FindByID(id int64) (Customer, bool) {
	for _, c := range s.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return Customer{}, false
}
