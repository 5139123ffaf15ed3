package constant

// FoodTypes is the fixed catalog of cuisine preferences, in the order
// it is served to clients.
var FoodTypes = []string{
	"Indian",
	"Chinese",
	"French",
	"Italian",
	"Mexican",
	"Japanese",
	"Thai",
	"American",
	"Greek",
	"Mediterranean",
}

var foodTypeSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(FoodTypes))
	for _, ft := range FoodTypes {
		set[ft] = struct{}{}
	}
	return set
}()

// IsFoodType reports whether s is one of the catalog entries.
func IsFoodType(s string) bool {
	_, ok := foodTypeSet[s]
	return ok
}
