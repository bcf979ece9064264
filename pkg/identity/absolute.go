package identity

import (
	"fmt"

	"github.com/kasuboski/sceneid/pkg/catalog"
)

// AbsoluteResult lists the episodes absolute numbers map to. Season is the
// season of the last episode, so a set spanning seasons reports where it ends.
type AbsoluteResult struct {
	Season   int32   `json:"season"`
	Episodes []int32 `json:"episodes"`
}

// ResolveAbsoluteNumbers maps absolute numbers of a show to its episodes, in order.
// A single number without an episode fails the whole call.
func ResolveAbsoluteNumbers(show *catalog.Show, numbers []int32) (AbsoluteResult, error) {
	if len(numbers) == 0 {
		return AbsoluteResult{}, ErrNoAbsoluteNumbers
	}

	if show == nil {
		return AbsoluteResult{}, ErrUnknownShow
	}

	result := AbsoluteResult{
		Episodes: make([]int32, 0, len(numbers)),
	}

	for _, n := range numbers {
		ep, ok := show.EpisodeByAbsolute(n)
		if !ok {
			return AbsoluteResult{}, &EpisodeNotFoundError{Show: show.ID, Absolute: n}
		}

		result.Season = ep.Season
		result.Episodes = append(result.Episodes, ep.Episode)
	}

	return result, nil
}

// ResolveAbsoluteNumbersByID looks the show up in the catalog first.
func ResolveAbsoluteNumbersByID(cat catalog.Catalog, showID int64, numbers []int32) (AbsoluteResult, error) {
	if len(numbers) == 0 {
		return AbsoluteResult{}, ErrNoAbsoluteNumbers
	}

	show, err := cat.FindByID(showID)
	if err != nil {
		return AbsoluteResult{}, err
	}

	if show == nil {
		return AbsoluteResult{}, fmt.Errorf("%w: %d", ErrUnknownShow, showID)
	}

	return ResolveAbsoluteNumbers(show, numbers)
}
