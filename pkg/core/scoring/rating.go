package scoring

// Rating is the letter creditworthiness grade, A best through D worst.
type Rating string

const (
	RatingA Rating = "A"
	RatingB Rating = "B"
	RatingC Rating = "C"
	RatingD Rating = "D"
)

// Classify maps the health score to a letter rating.
//
// Base mapping: >=80 A, >=60 B, >=40 C, else D.
//
// Business rule: when any High-severity risk finding is present the rating
// is capped at C regardless of the numeric score. A strong composite must
// not mask an acute risk in a lending decision; this cap is deliberate
// policy, not a numeric artifact of the score.
//
// A nil score (insufficient data) classifies as D: without a single
// computable ratio the core cannot attest creditworthiness and grades
// conservatively, leaving the insufficient-data flag to tell the full story.
func Classify(score *float64, acuteRisk bool) Rating {
	if score == nil {
		return RatingD
	}

	var rating Rating
	switch {
	case *score >= 80:
		rating = RatingA
	case *score >= 60:
		rating = RatingB
	case *score >= 40:
		rating = RatingC
	default:
		rating = RatingD
	}

	if acuteRisk && (rating == RatingA || rating == RatingB) {
		rating = RatingC
	}
	return rating
}
