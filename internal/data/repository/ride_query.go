package repository

import (
	"fmt"
	"strings"

	"ride-api/internal/data/entity"
)

const earthRadiusKm = 6371.0

type geoPoint struct {
	lat, lon float64
}

// RideQuery describes a filtered, optionally distance-annotated and sorted
// view over rides. Every method returns a modified copy; the receiver is
// never changed, so a base query can be shared and refined per request.
type RideQuery struct {
	id         *int64
	status     *entity.RideStatus
	riderEmail *string
	ref        *geoPoint
	order      []string
	limit      int
	offset     int
}

func NewRideQuery() RideQuery {
	return RideQuery{}
}

func (q RideQuery) WhereID(id int64) RideQuery {
	q.id = &id
	return q
}

func (q RideQuery) WhereStatus(status entity.RideStatus) RideQuery {
	q.status = &status
	return q
}

func (q RideQuery) WhereRiderEmail(email string) RideQuery {
	q.riderEmail = &email
	return q
}

// WithDistanceFrom annotates every ride with its great-circle distance in km
// from the given point to its pickup location.
func (q RideQuery) WithDistanceFrom(lat, lon float64) RideQuery {
	q.ref = &geoPoint{lat: lat, lon: lon}
	return q
}

// OrderBy replaces the sort tokens. Tokens are checked only when the query is
// built, so unknown ones and distance tokens without a reference point drop
// out silently.
func (q RideQuery) OrderBy(tokens ...string) RideQuery {
	q.order = append([]string(nil), tokens...)
	return q
}

func (q RideQuery) Page(limit, offset int) RideQuery {
	q.limit = limit
	q.offset = offset
	return q
}

func (q RideQuery) Annotated() bool {
	return q.ref != nil
}

// ParseOrder splits a comma separated order param into trimmed tokens.
func ParseOrder(raw string) []string {
	var tokens []string
	for _, tok := range strings.Split(raw, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

var orderTerms = map[string]string{
	"pickup_time":  "r.pickup_time ASC",
	"-pickup_time": "r.pickup_time DESC",
	"distance":     "distance ASC",
	"-distance":    "distance DESC",
}

// orderClauses resolves the requested tokens against the allow-list. The
// first token per field wins.
func (q RideQuery) orderClauses() []string {
	seen := make(map[string]bool)
	clauses := make([]string, 0, len(q.order))

	for _, tok := range q.order {
		term, ok := orderTerms[tok]
		if !ok {
			continue
		}
		field := strings.TrimPrefix(tok, "-")
		if field == "distance" && q.ref == nil {
			continue
		}
		if seen[field] {
			continue
		}
		seen[field] = true
		clauses = append(clauses, term)
	}
	return clauses
}

const rideSelect = `
		SELECT r.id, r.status, r.id_rider, r.id_driver,
		       r.pickup_latitude, r.pickup_longitude,
		       r.dropoff_latitude, r.dropoff_longitude,
		       r.pickup_time, r.created_at, r.updated_at,
		       ru.id, ru.username, ru.first_name, ru.last_name, ru.email,
		       ru.phone, ru.role, ru.created_at, ru.updated_at,
		       rd.id, rd.username, rd.first_name, rd.last_name, rd.email,
		       rd.phone, rd.role, rd.created_at, rd.updated_at,`

// Build compiles the query into SQL and its positional args.
func (q RideQuery) Build() (string, []any) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(rideSelect)

	args := []any{}
	argCount := 1

	if q.ref != nil {
		queryBuilder.WriteString(fmt.Sprintf(`
		       2 * %.1f * atan2(sqrt(hav.a), sqrt(greatest(1 - hav.a, 0))) AS distance,`, earthRadiusKm))
	} else {
		queryBuilder.WriteString(`
		       NULL::float8 AS distance,`)
	}

	queryBuilder.WriteString(`
		       count(*) OVER() AS total_count
		FROM rides r
		JOIN users ru ON ru.id = r.id_rider
		JOIN users rd ON rd.id = r.id_driver`)

	if q.ref != nil {
		lat := fmt.Sprintf("$%d::float8", argCount)
		lon := fmt.Sprintf("$%d::float8", argCount+1)
		queryBuilder.WriteString(fmt.Sprintf(`
		CROSS JOIN LATERAL (
			SELECT power(sin(radians(r.pickup_latitude - %[1]s) / 2), 2)
			     + cos(radians(%[1]s)) * cos(radians(r.pickup_latitude))
			     * power(sin(radians(r.pickup_longitude - %[2]s) / 2), 2) AS a
		) hav`, lat, lon))
		args = append(args, q.ref.lat, q.ref.lon)
		argCount += 2
	}

	var where []string
	if q.id != nil {
		where = append(where, fmt.Sprintf("r.id = $%d", argCount))
		args = append(args, *q.id)
		argCount++
	}
	if q.status != nil {
		where = append(where, fmt.Sprintf("r.status = $%d", argCount))
		args = append(args, string(*q.status))
		argCount++
	}
	if q.riderEmail != nil {
		where = append(where, fmt.Sprintf("ru.email = $%d", argCount))
		args = append(args, *q.riderEmail)
		argCount++
	}
	if len(where) > 0 {
		queryBuilder.WriteString("\n\t\tWHERE " + strings.Join(where, " AND "))
	}

	// id keeps pages stable when the requested keys tie
	order := append(q.orderClauses(), "r.id ASC")
	queryBuilder.WriteString("\n\t\tORDER BY " + strings.Join(order, ", "))

	if q.limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf("\n\t\tLIMIT $%d OFFSET $%d", argCount, argCount+1))
		args = append(args, q.limit, q.offset)
	}

	return queryBuilder.String(), args
}
