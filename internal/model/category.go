package model

import "strings"

// Category is a closed set of service categories a professional can belong to.
type Category string

const (
	CategoryElectrician    Category = "Electrician"
	CategoryACRepair       Category = "AC Repair"
	CategoryComputer       Category = "Computer Repair"
	CategoryBike           Category = "Bike Service"
	CategoryCar            Category = "Car Mechanic"
	CategoryPlumber        Category = "Plumber"
	CategoryWashingMachine Category = "Washing Machine"
	CategoryHomeDesigner   Category = "Home Designer"
	CategoryDecorator      Category = "Decorator"
	CategoryCatering       Category = "Catering"
	CategoryProgramManager Category = "Program Manager"
	CategoryPhotographer   Category = "Photographer"
	CategoryDancer         Category = "Dancer/Choreographer"
	CategoryGymTrainer     Category = "Gym Trainer"
	CategoryTeacher        Category = "Tutor/Teacher"
	CategoryTransporter    Category = "Transporter/Mover"
	CategoryOther          Category = "Other"
)

// Categories returns all known categories in display order.
func Categories() []Category {
	return []Category{
		CategoryElectrician,
		CategoryACRepair,
		CategoryComputer,
		CategoryBike,
		CategoryCar,
		CategoryPlumber,
		CategoryWashingMachine,
		CategoryHomeDesigner,
		CategoryDecorator,
		CategoryCatering,
		CategoryProgramManager,
		CategoryPhotographer,
		CategoryDancer,
		CategoryGymTrainer,
		CategoryTeacher,
		CategoryTransporter,
		CategoryOther,
	}
}

// ParseCategory matches a label against the known categories, case-insensitively.
// Unknown labels map to CategoryOther.
func ParseCategory(label string) Category {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), strings.TrimSpace(label)) {
			return c
		}
	}
	return CategoryOther
}
