package service

// NutrientKey names a nutrient in reports and accessor calls. Each key maps
// to the INFOODS tagname stored on food nutrition rows.
type NutrientKey string

const (
	Energy  NutrientKey = "ENERGY"
	Fat     NutrientKey = "FAT"
	FatSat  NutrientKey = "FAT_SAT"
	FatPoly NutrientKey = "FAT_POLY"
	FatMono NutrientKey = "FAT_MONO"
	Protein NutrientKey = "PROTEIN"
	Carb    NutrientKey = "CARB"
	Sugar   NutrientKey = "SUGAR"
	Chole   NutrientKey = "CHOLE"
	Sodium  NutrientKey = "SODIUM"
	Potas   NutrientKey = "POTAS"
	Fiber   NutrientKey = "FIBER"
)

var tagnameByKey = map[NutrientKey]string{
	Energy:  "ENERC_KCAL",
	Fat:     "FAT",
	FatSat:  "FASAT",
	FatPoly: "FAPU",
	FatMono: "FAMS",
	Protein: "PROCNT",
	Carb:    "CHOCDF",
	Sugar:   "SUGAR",
	Chole:   "CHOLE",
	Sodium:  "NA",
	Potas:   "K",
	Fiber:   "FIBTG",
}

// reportedKeys are the keys aggregation reports, in display order.
var reportedKeys = []NutrientKey{
	Energy, Fat, Protein, Carb,
	Sugar, Chole, Sodium, Potas, Fiber,
}

var unitByKey = map[NutrientKey]string{
	Energy:  "kcal",
	Fat:     "g",
	FatSat:  "g",
	FatPoly: "g",
	FatMono: "g",
	Protein: "g",
	Carb:    "g",
	Sugar:   "g",
	Chole:   "mg",
	Sodium:  "mg",
	Potas:   "mg",
	Fiber:   "g",
}

// Tagname returns the INFOODS tagname behind a nutrient key.
func Tagname(key NutrientKey) (string, bool) {
	tag, ok := tagnameByKey[key]
	return tag, ok
}

// ReportedKeys returns the nutrient keys that appear in aggregated totals.
func ReportedKeys() []NutrientKey {
	out := make([]NutrientKey, len(reportedKeys))
	copy(out, reportedKeys)
	return out
}
