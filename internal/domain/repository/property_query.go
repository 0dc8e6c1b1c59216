package repository

import (
	"fmt"
	"strconv"
	"strings"

	"stayfinder/internal/domain/model"
)

// BuildPropertySearchQuery assembles the parameterized statement for a
// property search. It is pure: no validation, no I/O, every input produces a
// statement.
//
// Three shapes exist:
//   - nil filter: every property up to limit.
//   - owner-scoped: only that owner's properties; all other criteria are
//     ignored.
//   - general search: joins property_reviews for the average rating, with one
//     predicate per present criterion, grouped by property.
//
// Prices arrive in dollars and are bound in cents. Numeric criteria are bound
// as strings, matching the wire shape the HTTP layer hands over; postgres
// coerces them against the integer columns.
func BuildPropertySearchQuery(filter *model.SearchFilter, limit int) (string, []any) {
	var sb strings.Builder
	var args []any

	if filter == nil {
		sb.WriteString("SELECT * FROM properties")
		return appendLimit(&sb, args, limit)
	}

	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		sb.WriteString("SELECT * FROM properties WHERE owner_id = $1")
		return appendLimit(&sb, args, limit)
	}

	sb.WriteString("SELECT properties.*, avg(property_reviews.rating) AS average_rating" +
		" FROM properties" +
		" JOIN property_reviews ON properties.id = property_reviews.property_id")

	// The WHERE/AND choice tracks how many predicates have been written, not
	// how many parameters are bound, so a non-predicate parameter can never
	// flip the keyword.
	predicates := 0
	addPredicate := func(expr string, value any) {
		args = append(args, value)
		if predicates == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		predicates++
		fmt.Fprintf(&sb, expr, len(args))
	}

	if filter.City != "" {
		addPredicate("properties.city ILIKE $%d", "%"+filter.City+"%")
	}
	if filter.MinimumPricePerNight != nil {
		addPredicate("properties.cost_per_night >= $%d", strconv.Itoa(*filter.MinimumPricePerNight*100))
	}
	if filter.MaximumPricePerNight != nil {
		addPredicate("properties.cost_per_night <= $%d", strconv.Itoa(*filter.MaximumPricePerNight*100))
	}

	sb.WriteString(" GROUP BY properties.id")

	// HAVING applies to the aggregate, so it sits outside the predicate
	// prefix logic.
	if filter.MinimumRating != nil {
		args = append(args, strconv.FormatFloat(*filter.MinimumRating, 'f', -1, 64))
		fmt.Fprintf(&sb, " HAVING avg(property_reviews.rating) >= $%d", len(args))
	}

	sb.WriteString(" ORDER BY cost_per_night")
	return appendLimit(&sb, args, limit)
}

func appendLimit(sb *strings.Builder, args []any, limit int) (string, []any) {
	args = append(args, limit)
	fmt.Fprintf(sb, " LIMIT $%d", len(args))
	return sb.String(), args
}
