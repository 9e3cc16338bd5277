package models

const DefaultTestimonialRating = 5

type Testimonial struct {
	ID DocID `bson:"_id,omitempty" json:"_id,omitempty"`

	Author   string  `bson:"author" json:"author"`
	Message  string  `bson:"message" json:"message"`
	Rating   int     `bson:"rating" json:"rating"`
	Avatar   *string `bson:"avatar" json:"avatar"`
	Featured bool    `bson:"featured" json:"featured"`
}

type TestimonialInput struct {
	Author   string  `json:"author" validate:"required"`
	Message  string  `json:"message" validate:"required"`
	Rating   *int    `json:"rating" validate:"omitnil,min=1,max=5"`
	Avatar   *string `json:"avatar"`
	Featured bool    `json:"featured"`
}

func (in TestimonialInput) Record() Testimonial {
	t := Testimonial{
		Author:   in.Author,
		Message:  in.Message,
		Rating:   DefaultTestimonialRating,
		Avatar:   in.Avatar,
		Featured: in.Featured,
	}
	if in.Rating != nil {
		t.Rating = *in.Rating
	}
	return t
}
