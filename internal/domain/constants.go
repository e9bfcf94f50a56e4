package domain

// SaveKey is the fixed key the session snapshot is stored under.
const SaveKey = "dogDaycare_saveData_v1"

// Display colors for dogs
const (
	InitialDogColor   = "#eec27f"
	GeneratedDogColor = "#fff"
)

// Breed is one of a closed set of dog breeds.
type Breed string

const (
	BreedGoldenRetriever Breed = "Golden Retriever"
	BreedGoldendoodle    Breed = "Goldendoodle"
	BreedPoodle          Breed = "Poodle"
	BreedGermanShepherd  Breed = "German Shepherd"
	BreedPomeranian      Breed = "Pomeranian"
	BreedCockerSpaniel   Breed = "Cocker Spaniel"
	BreedYorkie          Breed = "Yorkie"
	BreedHusky           Breed = "Husky"
	BreedLabrador        Breed = "Labrador"
	BreedShibaInu        Breed = "Shiba Inu"
)

// Breeds lists every breed in display order.
var Breeds = []Breed{
	BreedGoldenRetriever,
	BreedGoldendoodle,
	BreedPoodle,
	BreedGermanShepherd,
	BreedPomeranian,
	BreedCockerSpaniel,
	BreedYorkie,
	BreedHusky,
	BreedLabrador,
	BreedShibaInu,
}

// DogNames is the pool generated dogs are named from.
var DogNames = []string{
	"Biscuit", "Coco", "Buddy", "Daisy", "Teddy", "Nala", "Archie", "Milo",
	"Luna", "Cooper", "Bailey", "Charlie", "Max", "Sadie", "Bear",
}

// WorkerNames is the pool hiring candidates are named from.
var WorkerNames = []string{
	"Alice", "Bob", "Charlie", "Diana", "Evan", "Fiona", "George", "Hannah",
	"Ian", "Julia", "Kevin", "Laura", "Mike", "Nina", "Oscar", "Paula",
	"Quinn", "Rachel", "Sam", "Tina", "Umar", "Vicky", "Will", "Xena", "Yara", "Zack",
}

// WorkerAvatars is the pool of avatar glyphs for hiring candidates.
var WorkerAvatars = []string{
	"👩‍🌾", "👨‍🌾", "👩‍🍳", "👨‍🍳", "👩‍⚕️", "👨‍⚕️", "👩‍🔧", "👨‍🔧",
	"👩‍🔬", "👨‍🔬", "👩‍🎤", "👨‍🎤", "👩‍🎨", "👨‍🎨", "👮‍♀️", "👮‍♂️",
	"🕵️‍♀️", "🕵️‍♂️", "🦸‍♀️", "🦸‍♂️", "🧙‍♀️", "🧙‍♂️", "🧛‍♀️", "🧛‍♂️",
}
