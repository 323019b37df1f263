package booking

import (
	"context"
	"sort"
	"strings"

	"lensbook/models"
)

// MatchKind classifies how well a professional matches an unassigned booking.
// The variants are ordered: a pincode match always outranks a city match,
// which outranks a state match, which outranks a bare service-type match.
type MatchKind int

const (
	NoMatch MatchKind = iota
	ServiceMatch
	StateMatch
	CityMatch
	PincodeMatch
)

func (k MatchKind) String() string {
	switch k {
	case PincodeMatch:
		return "pincode"
	case CityMatch:
		return "city"
	case StateMatch:
		return "state"
	case ServiceMatch:
		return "service"
	default:
		return "none"
	}
}

// RankedProfessional is a candidate for assignment with its match
// classification.
type RankedProfessional struct {
	Professional models.Professional `json:"professional"`
	Match        MatchKind           `json:"-"`
	MatchLabel   string              `json:"match"`
}

// classifyMatch computes the strongest match between a booking and a
// professional. Location comparisons are case-insensitive.
func classifyMatch(b *models.Booking, p *models.Professional) MatchKind {
	service := false
	for _, s := range p.ServiceTypes {
		if strings.EqualFold(s, b.EventType) {
			service = true
			break
		}
	}

	switch {
	case b.Pincode != "" && b.Pincode == p.Pincode:
		return PincodeMatch
	case b.City != "" && strings.EqualFold(b.City, p.City):
		return CityMatch
	case b.State != "" && strings.EqualFold(b.State, p.State):
		return StateMatch
	case service:
		return ServiceMatch
	default:
		return NoMatch
	}
}

// RankCandidates ranks approved professionals for an unassigned booking by
// match kind, breaking ties on rating and then total bookings.
func (se *DefaultBookingEngine) RankCandidates(ctx context.Context, bookingID string) ([]RankedProfessional, error) {
	b, err := se.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	pros, err := se.Professionals.FindApproved(ctx)
	if err != nil {
		return nil, err
	}

	ranked := []RankedProfessional{}
	for i := range pros {
		kind := classifyMatch(b, &pros[i])
		if kind == NoMatch {
			continue
		}
		ranked = append(ranked, RankedProfessional{
			Professional: pros[i],
			Match:        kind,
			MatchLabel:   kind.String(),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Match != ranked[j].Match {
			return ranked[i].Match > ranked[j].Match
		}
		if ranked[i].Professional.Rating != ranked[j].Professional.Rating {
			return ranked[i].Professional.Rating > ranked[j].Professional.Rating
		}
		return ranked[i].Professional.TotalBookings > ranked[j].Professional.TotalBookings
	})
	return ranked, nil
}
