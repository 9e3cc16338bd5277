package seed

import "github.com/BruksfildServices01/barbershop-api/internal/models"

func ptr[T any](v T) *T { return &v }

func barbers() []models.BarberInput {
	return []models.BarberInput{
		{
			Name:            "Jax",
			Bio:             ptr("Master of modern fades."),
			Specialties:     []string{"Fades", "Beards"},
			ExperienceYears: ptr(8),
		},
		{
			Name:            "Mila",
			Bio:             ptr("Classic cuts & razor finishes."),
			Specialties:     []string{"Classics", "Razor"},
			ExperienceYears: ptr(10),
		},
	}
}

func services() []models.ServiceInput {
	return []models.ServiceInput{
		{Name: "Skin Fade", Description: ptr("Precision skin fade with style"), DurationMinutes: 45, Price: ptr(35.0), Popular: true},
		{Name: "Classic Cut", Description: ptr("Timeless cut and style"), DurationMinutes: 40, Price: ptr(30.0), Popular: true},
		{Name: "Beard Trim", Description: ptr("Shape and line-up"), DurationMinutes: 20, Price: ptr(18.0)},
	}
}

func testimonials() []models.TestimonialInput {
	return []models.TestimonialInput{
		{Author: "Andre", Message: "Best fade in the city.", Rating: ptr(5), Featured: true},
		{Author: "Luis", Message: "Clean lines, great vibe.", Rating: ptr(5)},
	}
}
