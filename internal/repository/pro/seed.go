package pro

import (
	"github.com/google/uuid"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

// Seed returns the demo professional directory. With no persistence layer the
// directory starts from this fixed set on every run.
func Seed() []model.ProProfile {
	return []model.ProProfile{
		{
			ID:          "p1",
			UserID:      uuid.New(),
			Name:        "Robert Fox",
			Category:    model.CategoryElectrician,
			Description: "Certified electrician for wiring, short circuits and appliance installation.",
			HourlyRate:  45,
			Rating:      4.8,
			ReviewCount: 127,
			Location:    "Bandra West, Mumbai",
			ImageURL:    "https://picsum.photos/200/200?random=1",
			IsVerified:  true,
			Experience:  8,
		},
		{
			ID:          "p2",
			UserID:      uuid.New(),
			Name:        "Jenny Wilson",
			Category:    model.CategoryHomeDesigner,
			Description: "Interior designer focused on compact urban homes and renovations.",
			HourlyRate:  80,
			Rating:      4.9,
			ReviewCount: 89,
			Location:    "Indiranagar, Bangalore",
			ImageURL:    "https://picsum.photos/200/200?random=2",
			IsVerified:  true,
			Experience:  11,
		},
		{
			ID:          "p3",
			UserID:      uuid.New(),
			Name:        "Arjun Mehta",
			Category:    model.CategoryPlumber,
			Description: "Plumbing repairs from leaky taps to full bathroom refits.",
			HourlyRate:  35,
			Rating:      4.6,
			ReviewCount: 214,
			Location:    "Koramangala, Bangalore",
			ImageURL:    "https://picsum.photos/200/200?random=3",
			IsVerified:  true,
			Experience:  6,
		},
		{
			ID:          "p4",
			UserID:      uuid.New(),
			Name:        "Priya Sharma",
			Category:    model.CategoryACRepair,
			Description: "Split and window AC servicing, gas refills and installations.",
			HourlyRate:  50,
			Rating:      4.7,
			ReviewCount: 156,
			Location:    "Andheri East, Mumbai",
			ImageURL:    "https://picsum.photos/200/200?random=4",
			IsVerified:  false,
			Experience:  5,
		},
		{
			ID:          "p5",
			UserID:      uuid.New(),
			Name:        "David Chen",
			Category:    model.CategoryComputer,
			Description: "Laptop and desktop repair, data recovery, OS reinstalls.",
			HourlyRate:  40,
			Rating:      4.5,
			ReviewCount: 73,
			Location:    "HSR Layout, Bangalore",
			ImageURL:    "https://picsum.photos/200/200?random=5",
			IsVerified:  true,
			Experience:  9,
		},
		{
			ID:          "p6",
			UserID:      uuid.New(),
			Name:        "Sara Khan",
			Category:    model.CategoryPhotographer,
			Description: "Event and portrait photographer with same-week delivery.",
			HourlyRate:  120,
			Rating:      5.0,
			ReviewCount: 41,
			Location:    "Connaught Place, New Delhi",
			ImageURL:    "https://picsum.photos/200/200?random=6",
			IsVerified:  true,
			Experience:  7,
		},
		{
			ID:          "p7",
			UserID:      uuid.New(),
			Name:        "Mohit Verma",
			Category:    model.CategoryCar,
			Description: "Doorstep car servicing, diagnostics and minor bodywork.",
			HourlyRate:  55,
			Rating:      4.4,
			ReviewCount: 98,
			Location:    "Gachibowli, Hyderabad",
			ImageURL:    "https://picsum.photos/200/200?random=7",
			IsVerified:  false,
			Experience:  10,
		},
		{
			ID:          "p8",
			UserID:      uuid.New(),
			Name:        "Anita Desai",
			Category:    model.CategoryTeacher,
			Description: "Maths and physics tutoring for grades 8-12, online or at home.",
			HourlyRate:  30,
			Rating:      4.9,
			ReviewCount: 187,
			Location:    "Salt Lake, Kolkata",
			ImageURL:    "https://picsum.photos/200/200?random=8",
			IsVerified:  true,
			Experience:  12,
		},
	}
}
