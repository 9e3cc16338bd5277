package models

const (
	DefaultBarberExperienceYears = 5
	DefaultBarberRating          = 4.9
)

type Barber struct {
	ID DocID `bson:"_id,omitempty" json:"_id,omitempty"`

	Name            string   `bson:"name" json:"name"`
	Bio             *string  `bson:"bio" json:"bio"`
	Avatar          *string  `bson:"avatar" json:"avatar"`
	ExperienceYears int      `bson:"experience_years" json:"experience_years"`
	Specialties     []string `bson:"specialties" json:"specialties"`
	Rating          float64  `bson:"rating" json:"rating"`
}

type BarberInput struct {
	Name            string   `json:"name" validate:"required"`
	Bio             *string  `json:"bio"`
	Avatar          *string  `json:"avatar"`
	ExperienceYears *int     `json:"experience_years" validate:"omitnil,min=0,max=60"`
	Specialties     []string `json:"specialties"`
	Rating          *float64 `json:"rating" validate:"omitnil,min=0,max=5"`
}

func (in BarberInput) Record() Barber {
	b := Barber{
		Name:            in.Name,
		Bio:             in.Bio,
		Avatar:          in.Avatar,
		ExperienceYears: DefaultBarberExperienceYears,
		Specialties:     in.Specialties,
		Rating:          DefaultBarberRating,
	}
	if in.ExperienceYears != nil {
		b.ExperienceYears = *in.ExperienceYears
	}
	if in.Rating != nil {
		b.Rating = *in.Rating
	}
	if b.Specialties == nil {
		b.Specialties = []string{}
	}
	return b
}
