package main

import (
	"log"
	"os"

	"medtriage-be/internal/model"
	"medtriage-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	// Idempotent: skip when hospitals already exist
	var count int64
	if err := db.Model(&model.Hospital{}).Count(&count).Error; err != nil {
		log.Fatal("Error: Failed to count hospitals:", err)
	}
	if count > 0 {
		log.Println("Database already has hospital data. Skipping seed.")
		return
	}

	log.Println("Seeding hospitals and doctors...")

	hospitals := []model.Hospital{
		{
			Name:             "Sydney General Hospital",
			Address:          "123 Health Street, Sydney CBD",
			City:             "Sydney",
			Phone:            "+61 2 9123 4567",
			Specialties:      datatypes.JSON([]byte(`["General Medicine", "Emergency Care", "Cardiology", "Pediatrics"]`)),
			EmergencyCapable: true,
		},
		{
			Name:             "Royal North Shore Hospital",
			Address:          "Reserve Road, St Leonards",
			City:             "Sydney",
			Phone:            "+61 2 9926 7111",
			Specialties:      datatypes.JSON([]byte(`["General Medicine", "Surgery", "Neurology", "Orthopedics"]`)),
			EmergencyCapable: true,
		},
		{
			Name:             "Westmead Hospital",
			Address:          "Darcy Road, Westmead",
			City:             "Sydney",
			Phone:            "+61 2 8890 5555",
			Specialties:      datatypes.JSON([]byte(`["General Medicine", "Pediatrics", "Oncology", "Maternity"]`)),
			EmergencyCapable: true,
		},
		{
			Name:             "Prince of Wales Hospital",
			Address:          "High Street, Randwick",
			City:             "Sydney",
			Phone:            "+61 2 9382 2222",
			Specialties:      datatypes.JSON([]byte(`["General Medicine", "Cardiology", "Neurology", "Dermatology"]`)),
			EmergencyCapable: true,
		},
		{
			Name:             "Liverpool Hospital",
			Address:          "Elizabeth Street, Liverpool",
			City:             "Sydney",
			Phone:            "+61 2 8738 3000",
			Specialties:      datatypes.JSON([]byte(`["General Medicine", "Trauma Care", "Pediatrics", "Surgery"]`)),
			EmergencyCapable: true,
		},
	}

	for i := range hospitals {
		if err := db.Create(&hospitals[i]).Error; err != nil {
			log.Fatal("Error: Failed to seed hospital:", err)
		}
	}

	doctors := []model.Doctor{
		// Sydney General Hospital
		{
			HospitalId: hospitals[0].Id,
			FullName:   "Dr. Sarah Johnson",
			Specialty:  "General Medicine",
			Availability: datatypes.JSON([]byte(`{
				"monday": ["09:00", "10:00", "11:00", "14:00", "15:00", "16:00"],
				"tuesday": ["09:00", "10:00", "11:00", "14:00", "15:00"],
				"wednesday": ["09:00", "10:00", "11:00", "14:00", "15:00", "16:00"],
				"thursday": ["09:00", "10:00", "11:00", "14:00", "15:00"],
				"friday": ["09:00", "10:00", "11:00", "14:00"]
			}`)),
		},
		{
			HospitalId: hospitals[0].Id,
			FullName:   "Dr. Michael Chen",
			Specialty:  "Cardiology",
			Availability: datatypes.JSON([]byte(`{
				"monday": ["10:00", "11:00", "14:00", "15:00"],
				"wednesday": ["10:00", "11:00", "14:00", "15:00", "16:00"],
				"thursday": ["09:00", "10:00", "11:00", "14:00"],
				"friday": ["10:00", "11:00", "14:00", "15:00"]
			}`)),
		},
		{
			HospitalId: hospitals[0].Id,
			FullName:   "Dr. Emily Watson",
			Specialty:  "Pediatrics",
			Availability: datatypes.JSON([]byte(`{
				"monday": ["09:00", "10:00", "11:00", "13:00", "14:00"],
				"tuesday": ["09:00", "10:00", "11:00", "13:00", "14:00", "15:00"],
				"thursday": ["09:00", "10:00", "11:00", "13:00", "14:00"],
				"friday": ["09:00", "10:00", "11:00"]
			}`)),
		},
		// Royal North Shore Hospital
		{
			HospitalId: hospitals[1].Id,
			FullName:   "Dr. David Kumar",
			Specialty:  "General Medicine",
			Availability: datatypes.JSON([]byte(`{
				"monday": ["08:00", "09:00", "10:00", "14:00", "15:00", "16:00"],
				"tuesday": ["08:00", "09:00", "10:00", "14:00", "15:00", "16:00"],
				"wednesday": ["08:00", "09:00", "10:00", "14:00", "15:00"],
				"friday": ["08:00", "09:00", "10:00", "14:00"]
			}`)),
		},
		{
			HospitalId: hospitals[1].Id,
			FullName:   "Dr. Rachel Martinez",
			Specialty:  "Neurology",
			Availability: datatypes.JSON([]byte(`{
				"tuesday": ["10:00", "11:00", "14:00", "15:00"],
				"wednesday": ["10:00", "11:00", "14:00"],
				"thursday": ["10:00", "11:00", "14:00", "15:00", "16:00"],
				"friday": ["10:00", "11:00", "14:00"]
			}`)),
		},
		{
			HospitalId: hospitals[1].Id,
			FullName:   "Dr. James Anderson",
			Specialty:  "Orthopedics",
			Availability: datatypes.JSON([]byte(`{
				"monday": ["09:00", "10:00", "11:00", "15:00", "16:00"],
				"tuesday": ["09:00", "10:00", "11:00", "15:00"],
				"thursday": ["09:00", "10:00", "11:00", "15:00", "16:00"],
				"friday": ["09:00", "10:00", "11:00"]
			}`)),
		},
		// Westmead Hospital
		{
			HospitalId: hospitals[2].Id,
			FullName:   "Dr. Lisa Thompson",
			Specialty:  "General Medicine",
			Availability: datatypes.JSON([]byte(`{
				"monday": ["09:00", "10:00", "11:00", "14:00", "15:00"],
				"tuesday": ["09:00", "10:00", "11:00", "14:00", "15:00", "16:00"],
				"wednesday": ["09:00", "10:00", "11:00", "14:00"],
				"thursday": ["09:00", "10:00", "11:00", "14:00", "15:00"],
				"friday": ["09:00", "10:00", "11:00", "14:00"]
			}`)),
		},
		{
			HospitalId: hospitals[2].Id,
			FullName:   "Dr. Ahmed Hassan",
			Specialty:  "Oncology",
			Availability: datatypes.JSON([]byte(`{
				"monday": ["10:00", "11:00", "14:00"],
				"wednesday": ["10:00", "11:00", "14:00", "15:00"],
				"thursday": ["10:00", "11:00", "14:00"],
				"friday": ["10:00", "11:00"]
			}`)),
		},
		// Prince of Wales Hospital
		{
			HospitalId: hospitals[3].Id,
			FullName:   "Dr. Jennifer Lee",
			Specialty:  "Dermatology",
			Availability: datatypes.JSON([]byte(`{
				"monday": ["09:00", "10:00", "11:00", "13:00", "14:00"],
				"tuesday": ["09:00", "10:00", "11:00", "13:00", "14:00"],
				"wednesday": ["09:00", "10:00", "11:00"],
				"thursday": ["09:00", "10:00", "11:00", "13:00", "14:00"],
				"friday": ["09:00", "10:00", "11:00"]
			}`)),
		},
		{
			HospitalId: hospitals[3].Id,
			FullName:   "Dr. Robert Williams",
			Specialty:  "Cardiology",
			Availability: datatypes.JSON([]byte(`{
				"monday": ["10:00", "11:00", "14:00", "15:00"],
				"tuesday": ["10:00", "11:00", "14:00", "15:00", "16:00"],
				"thursday": ["10:00", "11:00", "14:00", "15:00"],
				"friday": ["10:00", "11:00", "14:00"]
			}`)),
		},
		// Liverpool Hospital
		{
			HospitalId: hospitals[4].Id,
			FullName:   "Dr. Priya Sharma",
			Specialty:  "General Medicine",
			Availability: datatypes.JSON([]byte(`{
				"monday": ["08:00", "09:00", "10:00", "14:00", "15:00", "16:00"],
				"tuesday": ["08:00", "09:00", "10:00", "14:00", "15:00"],
				"wednesday": ["08:00", "09:00", "10:00", "14:00", "15:00", "16:00"],
				"thursday": ["08:00", "09:00", "10:00", "14:00", "15:00"],
				"friday": ["08:00", "09:00", "10:00"]
			}`)),
		},
		{
			HospitalId: hospitals[4].Id,
			FullName:   "Dr. Thomas Brown",
			Specialty:  "Trauma Care",
			Availability: datatypes.JSON([]byte(`{
				"monday": ["09:00", "10:00", "15:00", "16:00"],
				"tuesday": ["09:00", "10:00", "15:00", "16:00"],
				"wednesday": ["09:00", "10:00", "15:00"],
				"thursday": ["09:00", "10:00", "15:00", "16:00"],
				"friday": ["09:00", "10:00"]
			}`)),
		},
	}

	for i := range doctors {
		if err := db.Create(&doctors[i]).Error; err != nil {
			log.Fatal("Error: Failed to seed doctor:", err)
		}
	}

	log.Printf("✅ Successfully seeded %d hospitals and %d doctors!", len(hospitals), len(doctors))
}
