package models

type Service struct {
	ID DocID `bson:"_id,omitempty" json:"_id,omitempty"`

	Name            string  `bson:"name" json:"name"`
	Description     *string `bson:"description" json:"description"`
	DurationMinutes int     `bson:"duration_minutes" json:"duration_minutes"`
	Price           float64 `bson:"price" json:"price"`
	Popular         bool    `bson:"popular" json:"popular"`
}

// ServiceInput carries price as a pointer so a free service (0) is
// distinguishable from a missing price.
type ServiceInput struct {
	Name            string   `json:"name" validate:"required"`
	Description     *string  `json:"description"`
	DurationMinutes int      `json:"duration_minutes" validate:"required,min=10,max=240"`
	Price           *float64 `json:"price" validate:"required,min=0"`
	Popular         bool     `json:"popular"`
}

func (in ServiceInput) Record() Service {
	s := Service{
		Name:            in.Name,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Popular:         in.Popular,
	}
	if in.Price != nil {
		s.Price = *in.Price
	}
	return s
}
