package legacy

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "date before",
			input: "FIND DATE BEFORE 1990",
			want:  "year:0->1990",
		},
		{
			name:  "date after",
			input: "find d after 2000",
			want:  "year:2000->9999",
		},
		{
			name:  "date symbol with title",
			input: "find date < 1985 and t higgs",
			want:  "year:0->1985 and title:higgs",
		},
		{
			name:  "truncation keeps single title word",
			input: "FIND T quark#",
			want:  "title:quark*",
		},
		{
			name:  "bare surname",
			input: "FIND A ellis",
			want:  `author:ellis or author:"ellis, *"`,
		},
		{
			name:  "surname and initial",
			input: "find a ellis, j",
			want:  `author:"ellis, j*"`,
		},
		{
			name:  "surname and initial with dot before combiner",
			input: "find a ellis, j. and t higgs",
			want:  `author:"ellis, j*" and title:higgs`,
		},
		{
			name:  "surname and given name",
			input: "find a ellis, john",
			want: `author:"ellis, john" or author:"ellis, j *" or author:"ellis, j" or ` +
				`author:"ellis, jo *" or author:"ellis, jo" or author:"ellis, john *"`,
		},
		{
			name:  "given name first",
			input: "find a john ellis",
			want: `author:"ellis, john" or author:"ellis, j *" or author:"ellis, j" or ` +
				`author:"ellis, jo *" or author:"ellis, jo" or author:"ellis, john *"`,
		},
		{
			name:  "surname given middle",
			input: "find a ellis, john r.",
			want:  `author:"ellis, john* r*" or author:"ellis, j r " or author:"ellis, jo r "`,
		},
		{
			name:  "initials then surname",
			input: "find a j. r. ellis",
			want:  `author:"ellis, j* r*"`,
		},
		{
			name:  "exact author",
			input: "find ea ellis, j and t higgs",
			want:  `author:"ellis, j" and title:higgs`,
		},
		{
			name:  "multi-word title after find",
			input: "find t quark gluon",
			want:  "title:quark and title:gluon",
		},
		{
			name:  "title and keyword expansion",
			input: "find t quark gluon or k higgs boson",
			want:  "title:quark and title:gluon or keyword:higgs or keyword:boson",
		},
		{
			name:  "deleted keyword",
			input: "find e 10 gev and t higgs",
			want:  "10 gev and title:higgs",
		},
		{
			name:  "quoted title is not split",
			input: `find t "quark gluon"`,
			want:  `title:"quark gluon"`,
		},
		{
			name:  "keywords inside quotes are kept",
			input: `find t "not a" or j phys`,
			want:  `title:"not a" or journal:phys`,
		},
		{
			name:  "quoted phrase among words",
			input: `find t quark "gluon plasma"`,
			want:  `title:quark and title:"gluon plasma"`,
		},
		{
			name:  "upper case keyword",
			input: "FIND TI Quark",
			want:  "title:Quark",
		},
		{
			name:  "keyword only after combiner",
			input: "find quark t higgs",
			want:  "quark t higgs",
		},
		{
			name:  "affiliation",
			input: "find aff cern",
			want:  "700__u:cern",
		},
		{
			name:  "report number",
			input: "find rn hep-th/9711200",
			want:  "reportnumber:hep-th/9711200",
		},
		{
			name:  "field value followed by combiner",
			input: "find j phys and t x",
			want:  "journal:phys and title:x",
		},
		{
			name:  "multi-word value of a plain field",
			input: "find j phys rev",
			want:  "journal:phys rev",
		},
		{
			name:  "collaboration",
			input: "find cn atlas",
			want:  "710__g:atlas",
		},
		{
			name:  "negated bare surname covers the first variant only",
			input: "find t quark and not a ellis",
			want:  `title:quark and not author:ellis or author:"ellis, *"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_NotLegacy(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"",
		"find",
		"findings t quark",
		"title:quark and author:ellis",
		"  find t quark",
		"t quark#",
	}
	for _, in := range inputs {
		assert.Equal(t, in, Normalize(in), "%q", in)
		assert.False(t, IsLegacy(in), "%q", in)
	}
}

func TestNormalize_ExtendedAuthorFormat(t *testing.T) {
	t.Parallel()
	n := New(Options{ExtendedAuthorFormat: true})

	assert.Equal(t,
		`author:"ellis, john" or author:"ellis, j.*" or author:"ellis, j" or `+
			`author:"ellis, jo.*" or author:"ellis, jo" or author:"ellis, john *"`,
		n.Normalize("find a ellis, john"))
	assert.Equal(t,
		`author:"ellis, john* r*" or author:"ellis, j.r." or author:"ellis, jo.r."`,
		n.Normalize("find a ellis, john r."))
}

func TestNormalize_CustomKeywords(t *testing.T) {
	t.Parallel()
	n := New(Options{Keywords: map[string]string{
		"Exp-Name": "693__e:",
		"t":        "",
	}})

	assert.Equal(t, "693__e:atlas", n.Normalize("find exp-name atlas"))
	assert.Equal(t, "693__e:atlas", n.Normalize("find EXP-NAME atlas"))
	assert.Equal(t, "quark", n.Normalize("find t quark"))
	// the built-in table is not modified
	assert.Equal(t, "title:quark", Normalize("find t quark"))
	assert.Equal(t, titleField, Keywords()["t"])
}

func TestNormalize_CustomKeywordsAreFolded(t *testing.T) {
	t.Parallel()
	n := New(Options{Keywords: map[string]string{
		"Straße": "693__s:",
		"ﬁeld":   "693__f:",
	}})

	assert.Equal(t, "693__s:main", n.Normalize("find STRASSE main"))
	assert.Equal(t, "693__s:main", n.Normalize("find straße main"))
	assert.Equal(t, "693__f:x", n.Normalize("find field x"))
}

func TestTrace(t *testing.T) {
	t.Parallel()
	n := New(Options{})

	got, steps := n.Trace("find t quark gluon")
	assert.Equal(t, "title:quark and title:gluon", got)
	require.Len(t, steps, len(stages))
	assert.Equal(t, "keywords", steps[1].Stage)
	assert.Equal(t, "find title:quark gluon", steps[1].Query)
	assert.Equal(t, got, steps[len(steps)-1].Query)

	got, steps = n.Trace("title:quark")
	assert.Equal(t, "title:quark", got)
	assert.Empty(t, steps)
}

func TestNormalize_Concurrent(t *testing.T) {
	t.Parallel()
	n := New(Options{})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "title:quark and title:gluon", n.Normalize("FIND T quark gluon"))
		}()
	}
	wg.Wait()
}

func TestAuthorName_Format(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		author AuthorName
		sep    string
		want   string
	}{
		{
			name:   "no surname",
			author: AuthorName{Given: "john"},
			sep:    " ",
			want:   "",
		},
		{
			name:   "surname only",
			author: AuthorName{Surname: "ellis"},
			sep:    " ",
			want:   `author:ellis or author:"ellis, *"`,
		},
		{
			name:   "single initial",
			author: AuthorName{Surname: "ellis", Given: "j"},
			sep:    ".",
			want:   `author:"ellis, j*"`,
		},
		{
			name:   "single initial with middle",
			author: AuthorName{Surname: "ellis", Given: "j", Middle: "r"},
			sep:    ".",
			want:   `author:"ellis, j* r*"`,
		},
		{
			name:   "unicode given name",
			author: AuthorName{Surname: "müller", Given: "élodie"},
			sep:    ".",
			want: `author:"müller, élodie" or author:"müller, é.*" or author:"müller, é" or ` +
				`author:"müller, él.*" or author:"müller, él" or author:"müller, élodie *"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.author.Format(tt.sep))
		})
	}
}

func TestDateBound_Clause(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "year:0->1990", DateBound{Direction: Before, Year: 1990}.Clause())
	assert.Equal(t, "year:1990->9999", DateBound{Direction: After, Year: 1990}.Clause())
	assert.Equal(t, "after", After.String())
}
