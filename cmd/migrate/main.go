package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/database"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/models"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Applies the schema and optionally seeds a student account, for local
// development and fresh deployments.
func main() {
	var (
		seedRegNo  = flag.String("seed-registration", "", "registration number of a student to seed")
		seedName   = flag.String("seed-name", "", "full name of the seeded student")
		seedFees   = flag.Float64("seed-fees", 0, "per-semester fees of the seeded student")
		seedPasswd = flag.String("seed-password", "", "password of the seeded student")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = "host=localhost port=5432 user=postgres dbname=feeportal sslmode=disable"
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Cannot connect to database: ", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migrations failed: ", err)
	}

	if *seedRegNo != "" {
		if *seedPasswd == "" {
			log.Fatal("-seed-password is required when seeding a student")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*seedPasswd), 14)
		if err != nil {
			log.Fatal(err)
		}
		student := &models.Student{
			FullName:           *seedName,
			RegistrationNumber: *seedRegNo,
			CurrentSemester:    1,
			SemFees:            *seedFees,
			Password:           string(hash),
		}
		if err := database.CreateStudent(db, student); err != nil {
			log.Fatal("Failed to seed student: ", err)
		}
		fmt.Printf("Seeded student %s (%s)\n", student.FullName, student.RegistrationNumber)
	}
}
