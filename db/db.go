package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	StaffCollection           *mongo.Collection
	RolesCollection           *mongo.Collection
	LeadsCollection           *mongo.Collection
	CustomersCollection       *mongo.Collection
	PackagesCollection        *mongo.Collection
	ItinerariesCollection     *mongo.Collection
	ServicesCollection        *mongo.Collection
	GuidesCollection          *mongo.Collection
	TransportsCollection      *mongo.Collection
	BookingsCollection        *mongo.Collection
	BookingServicesCollection *mongo.Collection
	InvoicesCollection        *mongo.Collection
	PaymentsCollection        *mongo.Collection
	DocumentsCollection       *mongo.Collection
	CommLogsCollection        *mongo.Collection
	Client                    *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "ziyarahdb"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database(dbName)
	StaffCollection = database.Collection("staff")
	RolesCollection = database.Collection("roles")
	LeadsCollection = database.Collection("leads")
	CustomersCollection = database.Collection("customers")
	PackagesCollection = database.Collection("packages")
	ItinerariesCollection = database.Collection("itineraries")
	ServicesCollection = database.Collection("services")
	GuidesCollection = database.Collection("guides")
	TransportsCollection = database.Collection("transports")
	BookingsCollection = database.Collection("bookings")
	BookingServicesCollection = database.Collection("bookingservices")
	InvoicesCollection = database.Collection("invoices")
	PaymentsCollection = database.Collection("payments")
	DocumentsCollection = database.Collection("documents")
	CommLogsCollection = database.Collection("commlogs")

	ensureIndexes(database)
}

func ensureIndexes(database *mongo.Database) {
	ctx := context.TODO()
	idx := func(c *mongo.Collection, models []mongo.IndexModel) {
		if _, err := c.Indexes().CreateMany(ctx, models); err != nil {
			log.Printf("index creation on %s failed: %v", c.Name(), err)
		}
	}

	unique := options.Index().SetUnique(true)
	idx(StaffCollection, []mongo.IndexModel{
		{Keys: bson.M{"email": 1}, Options: unique},
		{Keys: bson.M{"username": 1}, Options: options.Index().SetUnique(true)},
	})
	idx(RolesCollection, []mongo.IndexModel{
		{Keys: bson.M{"role_name": 1}, Options: options.Index().SetUnique(true)},
	})
	idx(CustomersCollection, []mongo.IndexModel{
		{Keys: bson.M{"email": 1}, Options: options.Index().SetUnique(true)},
	})
	idx(ServicesCollection, []mongo.IndexModel{
		{Keys: bson.M{"name_lower": 1}, Options: options.Index().SetUnique(true)},
	})
	idx(ItinerariesCollection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "package_id", Value: 1}, {Key: "day_number", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	idx(InvoicesCollection, []mongo.IndexModel{
		{Keys: bson.M{"booking_id": 1}, Options: options.Index().SetUnique(true)},
	})
	idx(BookingsCollection, []mongo.IndexModel{
		{Keys: bson.M{"customer_id": 1}},
	})
	idx(PaymentsCollection, []mongo.IndexModel{
		{Keys: bson.M{"booking_id": 1}},
	})
}
