package curriculum

import "sync"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in curriculum catalog. It is built once and
// shared; the catalog is immutable, so concurrent use needs no
// coordination.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = NewCatalog(seedTopics)
	})
	return defaultCatalog
}

// seedTopics is the built-in catalog: kindergarten through grade 2,
// math and reading. Sort order controls same-level ordering within a
// (grade, subject) group.
var seedTopics = []Topic{
	// Kindergarten math (10)
	{
		ID:             "k-math-counting-1-10",
		Name:           "Counting 1 to 10",
		GradeID:        "k",
		SubjectID:      "math",
		Difficulty:     DifficultyBeginner,
		EstimatedHours: 2,
		Skills:         []string{"counting", "number-sense"},
		SortOrder:      10,
		Active:         true,
	},
	{
		ID:             "k-math-number-recognition",
		Name:           "Number Recognition",
		GradeID:        "k",
		SubjectID:      "math",
		Difficulty:     DifficultyBeginner,
		EstimatedHours: 2,
		Skills:         []string{"number-sense", "symbols"},
		SortOrder:      20,
		Active:         true,
	},
	{
		ID:             "k-math-counting-11-20",
		Name:           "Counting 11 to 20",
		GradeID:        "k",
		SubjectID:      "math",
		Difficulty:     DifficultyBeginner,
		EstimatedHours: 2,
		Prerequisites:  []string{"k-math-counting-1-10"},
		Skills:         []string{"counting", "number-sense"},
		SortOrder:      30,
		Active:         true,
	},
	{
		ID:             "k-math-shapes-basic",
		Name:           "Basic Shapes",
		GradeID:        "k",
		SubjectID:      "math",
		Difficulty:     DifficultyBeginner,
		EstimatedHours: 1.5,
		Skills:         []string{"geometry", "shapes"},
		SortOrder:      40,
		Active:         true,
	},
	{
		ID:             "k-math-patterns",
		Name:           "Simple Patterns",
		GradeID:        "k",
		SubjectID:      "math",
		Difficulty:     DifficultyBeginner,
		EstimatedHours: 1.5,
		Prerequisites:  []string{"k-math-shapes-basic"},
		Skills:         []string{"patterns", "logic"},
		SortOrder:      50,
		Active:         true,
	},
	{
		ID:             "k-math-comparing-quantities",
		Name:           "Comparing Quantities",
		GradeID:        "k",
		SubjectID:      "math",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 2,
		Prerequisites:  []string{"k-math-counting-1-10"},
		Skills:         []string{"number-sense", "comparison"},
		SortOrder:      60,
		Active:         true,
	},
	{
		ID:             "k-math-simple-addition",
		Name:           "Simple Addition",
		GradeID:        "k",
		SubjectID:      "math",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 3,
		Prerequisites:  []string{"k-math-counting-1-10", "k-math-number-recognition"},
		Skills:         []string{"addition", "number-sense"},
		SortOrder:      70,
		Active:         true,
	},
	{
		ID:             "k-math-simple-subtraction",
		Name:           "Simple Subtraction",
		GradeID:        "k",
		SubjectID:      "math",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 3,
		Prerequisites:  []string{"k-math-simple-addition"},
		Skills:         []string{"subtraction", "number-sense"},
		SortOrder:      80,
		Active:         true,
	},
	{
		ID:             "k-math-measurement-intro",
		Name:           "Introduction to Measurement",
		GradeID:        "k",
		SubjectID:      "math",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 2,
		Prerequisites:  []string{"k-math-comparing-quantities"},
		Skills:         []string{"measurement", "comparison"},
		SortOrder:      90,
		Active:         true,
	},
	{
		ID:             "k-math-story-problems",
		Name:           "Story Problems",
		GradeID:        "k",
		SubjectID:      "math",
		Difficulty:     DifficultyAdvanced,
		EstimatedHours: 3,
		Prerequisites:  []string{"k-math-simple-addition", "k-math-simple-subtraction"},
		Skills:         []string{"addition", "subtraction", "problem-solving"},
		SortOrder:      100,
		Active:         true,
	},

	// Kindergarten reading (5)
	{
		ID:             "k-read-alphabet",
		Name:           "The Alphabet",
		GradeID:        "k",
		SubjectID:      "reading",
		Difficulty:     DifficultyBeginner,
		EstimatedHours: 3,
		Skills:         []string{"letters", "phonics"},
		SortOrder:      10,
		Active:         true,
	},
	{
		ID:             "k-read-letter-sounds",
		Name:           "Letter Sounds",
		GradeID:        "k",
		SubjectID:      "reading",
		Difficulty:     DifficultyBeginner,
		EstimatedHours: 3,
		Prerequisites:  []string{"k-read-alphabet"},
		Skills:         []string{"phonics", "listening"},
		SortOrder:      20,
		Active:         true,
	},
	{
		ID:             "k-read-sight-words",
		Name:           "Sight Words",
		GradeID:        "k",
		SubjectID:      "reading",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 2.5,
		Prerequisites:  []string{"k-read-letter-sounds"},
		Skills:         []string{"vocabulary", "reading"},
		SortOrder:      30,
		Active:         true,
	},
	{
		ID:             "k-read-blending",
		Name:           "Blending Sounds",
		GradeID:        "k",
		SubjectID:      "reading",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 2.5,
		Prerequisites:  []string{"k-read-letter-sounds"},
		Skills:         []string{"phonics", "reading"},
		SortOrder:      40,
		Active:         true,
	},
	{
		ID:             "k-read-simple-sentences",
		Name:           "Reading Simple Sentences",
		GradeID:        "k",
		SubjectID:      "reading",
		Difficulty:     DifficultyAdvanced,
		EstimatedHours: 3,
		Prerequisites:  []string{"k-read-sight-words", "k-read-blending"},
		Skills:         []string{"reading", "comprehension"},
		SortOrder:      50,
		Active:         true,
	},

	// Grade 1 math (9)
	{
		ID:             "1-math-place-value",
		Name:           "Place Value: Tens and Ones",
		GradeID:        "1",
		SubjectID:      "math",
		Difficulty:     DifficultyBeginner,
		EstimatedHours: 2.5,
		Prerequisites:  []string{"k-math-counting-11-20"},
		Skills:         []string{"place-value", "number-sense"},
		SortOrder:      10,
		Active:         true,
	},
	{
		ID:             "1-math-addition-to-20",
		Name:           "Addition to 20",
		GradeID:        "1",
		SubjectID:      "math",
		Difficulty:     DifficultyBeginner,
		EstimatedHours: 3,
		Prerequisites:  []string{"k-math-simple-addition"},
		Skills:         []string{"addition", "fluency"},
		SortOrder:      20,
		Active:         true,
	},
	{
		ID:             "1-math-subtraction-to-20",
		Name:           "Subtraction to 20",
		GradeID:        "1",
		SubjectID:      "math",
		Difficulty:     DifficultyBeginner,
		EstimatedHours: 3,
		Prerequisites:  []string{"k-math-simple-subtraction"},
		Skills:         []string{"subtraction", "fluency"},
		SortOrder:      30,
		Active:         true,
	},
	{
		ID:             "1-math-time-hours",
		Name:           "Telling Time to the Hour",
		GradeID:        "1",
		SubjectID:      "math",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 2,
		Skills:         []string{"time", "measurement"},
		SortOrder:      40,
		Active:         true,
	},
	{
		ID:             "1-math-addition-two-digit",
		Name:           "Two-Digit Addition",
		GradeID:        "1",
		SubjectID:      "math",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 3.5,
		Prerequisites:  []string{"1-math-place-value", "1-math-addition-to-20"},
		Skills:         []string{"addition", "place-value"},
		SortOrder:      50,
		Active:         true,
	},
	{
		ID:             "1-math-subtraction-two-digit",
		Name:           "Two-Digit Subtraction",
		GradeID:        "1",
		SubjectID:      "math",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 3.5,
		Prerequisites:  []string{"1-math-place-value", "1-math-subtraction-to-20"},
		Skills:         []string{"subtraction", "place-value"},
		SortOrder:      60,
		Active:         true,
	},
	{
		ID:             "1-math-money-coins",
		Name:           "Counting Coins",
		GradeID:        "1",
		SubjectID:      "math",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 2.5,
		Prerequisites:  []string{"1-math-addition-to-20"},
		Skills:         []string{"money", "addition"},
		SortOrder:      70,
		Active:         true,
	},
	{
		ID:             "1-math-word-problems",
		Name:           "Word Problems",
		GradeID:        "1",
		SubjectID:      "math",
		Difficulty:     DifficultyAdvanced,
		EstimatedHours: 3,
		Prerequisites:  []string{"1-math-addition-two-digit", "1-math-subtraction-two-digit"},
		Skills:         []string{"problem-solving", "addition", "subtraction"},
		SortOrder:      80,
		Active:         true,
	},
	{
		ID:             "1-math-intro-multiplication",
		Name:           "Introduction to Multiplication",
		GradeID:        "1",
		SubjectID:      "math",
		Difficulty:     DifficultyMastery,
		EstimatedHours: 3,
		Prerequisites:  []string{"1-math-addition-two-digit"},
		Skills:         []string{"multiplication", "patterns"},
		SortOrder:      90,
		Active:         true,
	},

	// Grade 1 reading (5)
	{
		ID:             "1-read-phonics-digraphs",
		Name:           "Phonics: Digraphs",
		GradeID:        "1",
		SubjectID:      "reading",
		Difficulty:     DifficultyBeginner,
		EstimatedHours: 2.5,
		Prerequisites:  []string{"k-read-blending"},
		Skills:         []string{"phonics", "reading"},
		SortOrder:      10,
		Active:         true,
	},
	{
		ID:             "1-read-vocabulary-growth",
		Name:           "Growing Vocabulary",
		GradeID:        "1",
		SubjectID:      "reading",
		Difficulty:     DifficultyBeginner,
		EstimatedHours: 2,
		Skills:         []string{"vocabulary"},
		SortOrder:      20,
		Active:         true,
	},
	{
		ID:             "1-read-fluency-basic",
		Name:           "Reading Fluency",
		GradeID:        "1",
		SubjectID:      "reading",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 3,
		Prerequisites:  []string{"1-read-phonics-digraphs"},
		Skills:         []string{"fluency", "reading"},
		SortOrder:      30,
		Active:         true,
	},
	{
		ID:             "1-read-comprehension-basic",
		Name:           "Basic Comprehension",
		GradeID:        "1",
		SubjectID:      "reading",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 3,
		Prerequisites:  []string{"k-read-simple-sentences"},
		Skills:         []string{"comprehension", "reading"},
		SortOrder:      40,
		Active:         true,
	},
	{
		ID:             "1-read-retelling",
		Name:           "Retelling Stories",
		GradeID:        "1",
		SubjectID:      "reading",
		Difficulty:     DifficultyAdvanced,
		EstimatedHours: 2.5,
		Prerequisites:  []string{"1-read-comprehension-basic"},
		Skills:         []string{"comprehension", "speaking"},
		SortOrder:      50,
		Active:         true,
	},

	// Grade 2 math (7, one retired)
	{
		ID:             "2-math-place-value-hundreds",
		Name:           "Place Value to Hundreds",
		GradeID:        "2",
		SubjectID:      "math",
		Difficulty:     DifficultyBeginner,
		EstimatedHours: 2.5,
		Prerequisites:  []string{"1-math-place-value"},
		Skills:         []string{"place-value", "number-sense"},
		SortOrder:      10,
		Active:         true,
	},
	{
		ID:             "2-math-addition-regrouping",
		Name:           "Addition with Regrouping",
		GradeID:        "2",
		SubjectID:      "math",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 4,
		Prerequisites:  []string{"2-math-place-value-hundreds", "1-math-addition-two-digit"},
		Skills:         []string{"addition", "place-value"},
		SortOrder:      20,
		Active:         true,
	},
	{
		ID:             "2-math-subtraction-regrouping",
		Name:           "Subtraction with Regrouping",
		GradeID:        "2",
		SubjectID:      "math",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 4,
		Prerequisites:  []string{"2-math-place-value-hundreds", "1-math-subtraction-two-digit"},
		Skills:         []string{"subtraction", "place-value"},
		SortOrder:      30,
		Active:         true,
	},
	{
		ID:             "2-math-measurement-length",
		Name:           "Measuring Length",
		GradeID:        "2",
		SubjectID:      "math",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 2.5,
		Prerequisites:  []string{"k-math-measurement-intro"},
		Skills:         []string{"measurement"},
		SortOrder:      40,
		Active:         true,
	},
	{
		ID:             "2-math-intro-fractions",
		Name:           "Introduction to Fractions",
		GradeID:        "2",
		SubjectID:      "math",
		Difficulty:     DifficultyAdvanced,
		EstimatedHours: 3.5,
		Prerequisites:  []string{"2-math-place-value-hundreds"},
		Skills:         []string{"fractions", "number-sense"},
		SortOrder:      50,
		Active:         true,
	},
	{
		ID:             "2-math-multiplication-tables",
		Name:           "Multiplication Tables",
		GradeID:        "2",
		SubjectID:      "math",
		Difficulty:     DifficultyAdvanced,
		EstimatedHours: 4,
		Prerequisites:  []string{"1-math-intro-multiplication"},
		Skills:         []string{"multiplication", "fluency"},
		SortOrder:      60,
		Active:         true,
	},
	{
		// Retired unit kept for historical completion records.
		ID:             "2-math-legacy-abacus",
		Name:           "Abacus Arithmetic",
		GradeID:        "2",
		SubjectID:      "math",
		Difficulty:     DifficultyIntermediate,
		EstimatedHours: 2,
		Prerequisites:  []string{"2-math-place-value-hundreds"},
		Skills:         []string{"number-sense"},
		SortOrder:      70,
		Active:         false,
	},
}
