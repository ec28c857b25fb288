package legacy

// dropKeyword marks a keyword that has no canonical field. The keyword is
// removed together with the blanks after it, and the words that follow are
// searched in all fields.
const dropKeyword = ""

// keywordTable maps a legacy keyword (lowercase) to its canonical field
// prefix. It is read-only after package initialization.
var keywordTable = map[string]string{
	// affiliation
	"affiliation": "700__u:",
	"affil":       "700__u:",
	"aff":         "700__u:",
	"af":          "700__u:",
	"institution": "700__u:",
	"inst":        "700__u:",
	// any field
	"any": "anyfield:",
	// bulletin
	"bb":             "037__a:",
	"bbn":            "037__a:",
	"bull":           "037__a:",
	"bulletin-bd":    "037__a:",
	"bulletin-bd-no": "037__a:",
	"eprint":         "037__a:",
	// citation / reference
	"c":             "reference:",
	"citation":      "reference:",
	"cited":         "reference:",
	"jour-vol-page": "reference:",
	"jvp":           "reference:",
	// collaboration
	"collaboration": "710__g:",
	"collab-name":   "710__g:",
	"cn":            "710__g:",
	// conference number
	"conf-number": "111__g:",
	"cnum":        "111__g:",
	// country
	"cc":      "044__a:",
	"country": "044__a:",
	// date
	"date": "269__c:",
	"d":    "269__c:",
	// date added
	"date-added": "961__x:",
	"dadd":       "961__x:",
	"da":         "961__x:",
	// date updated
	"date-updated": "961__c:",
	"dupd":         "961__c:",
	"du":           "961__c:",
	// first author
	"fa":           "100__a:",
	"first-author": "100__a:",
	// author
	"a":      authorField,
	"au":     authorField,
	"author": authorField,
	"name":   authorField,
	// exact author, rewritten to a quoted author phrase later on
	"ea":           exactAuthorField,
	"exact-author": exactAuthorField,
	// experiment
	"exp":        "experiment:",
	"experiment": "experiment:",
	"expno":      "experiment:",
	"sd":         "experiment:",
	"se":         "experiment:",
	// journal
	"journal":      "journal:",
	"j":            "journal:",
	"published_in": "journal:",
	"spicite":      "journal:",
	"vol":          "journal:",
	// journal page
	"journal-page": "773__c:",
	"jp":           "773__c:",
	// journal year
	"journal-year": "773__y:",
	"jy":           "773__y:",
	// record key
	"key":       "970__a:",
	"irn":       "970__a:",
	"record":    "970__a:",
	"document":  "970__a:",
	"documents": "970__a:",
	// keywords
	"k":        keywordField,
	"keywords": keywordField,
	// note
	"note": "500__a:",
	"n":    "500__a:",
	// old title
	"old-title": "246__a:",
	"old-t":     "246__a:",
	"ex-ti":     "246__a:",
	"et":        "246__a:",
	// ppf subject
	"ppf-subject": "650__a:",
	"ps":          "650__a:",
	"scl":         "650__a:",
	"status":      "650__a:",
	// report number
	"r":          "reportnumber:",
	"rn":         "reportnumber:",
	"rept":       "reportnumber:",
	"report":     "reportnumber:",
	"report-num": "reportnumber:",
	// title
	"t":             titleField,
	"ti":            titleField,
	"title":         titleField,
	"with-language": titleField,
	// topic
	"topic":        "653__a:",
	"tp":           "653__a:",
	"hep-topic":    "653__a:",
	"desy-keyword": "653__a:",
	"dk":           "653__a:",

	// category
	"arx":      dropKeyword,
	"category": dropKeyword,
	// coden
	"bc":               dropKeyword,
	"browse-only-indx": dropKeyword,
	"coden":            dropKeyword,
	"journal-coden":    dropKeyword,
	// energy
	"e":                dropKeyword,
	"energy":           dropKeyword,
	"energyrange-code": dropKeyword,
	// exact expression number
	"ee":          dropKeyword,
	"exact-exp":   dropKeyword,
	"exact-expno": dropKeyword,
	// field code
	"f":          dropKeyword,
	"fc":         dropKeyword,
	"field":      dropKeyword,
	"field-code": dropKeyword,
	// hidden note
	"hidden-note": dropKeyword,
	"hn":          dropKeyword,
	// ppf
	"ppf":     dropKeyword,
	"ppflist": dropKeyword,
	// primarch
	"parx":     dropKeyword,
	"primarch": dropKeyword,
	// slac topics
	"ppfa":           dropKeyword,
	"slac-topics":    dropKeyword,
	"special-topics": dropKeyword,
	"stp":            dropKeyword,
	// test index
	"test":      dropKeyword,
	"testindex": dropKeyword,
	// texkey
	"texkey": dropKeyword,
	// type code
	"tc":        dropKeyword,
	"ty":        dropKeyword,
	"type":      dropKeyword,
	"type-code": dropKeyword,
}

// Keywords returns a copy of the built-in keyword table.
func Keywords() map[string]string {
	out := make(map[string]string, len(keywordTable))
	for k, v := range keywordTable {
		out[k] = v
	}
	return out
}
