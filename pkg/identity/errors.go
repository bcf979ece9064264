package identity

import (
	"errors"
	"fmt"

	"github.com/kasuboski/sceneid/pkg/catalog"
	"github.com/kasuboski/sceneid/pkg/nameparser"
)

var (
	// ErrInvalidName is matched by every InvalidNameError
	ErrInvalidName = nameparser.ErrInvalidName
	// ErrMultipleShows is returned whenever a lookup has more than one candidate show
	ErrMultipleShows = catalog.ErrMultipleShows

	ErrNoAbsoluteNumbers               = errors.New("no absolute numbers given")
	ErrEpisodeNotFoundByAbsoluteNumber = errors.New("episode not found by absolute number")
	ErrUnknownShow                     = errors.New("unknown show")
)

// InvalidNameError is returned when no parsing mode produced an acceptable result.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("unable to parse %q", e.Name)
}

func (e *InvalidNameError) Is(target error) bool {
	return target == ErrInvalidName
}

type EpisodeNotFoundError struct {
	Show     int64
	Absolute int32
}

func (e *EpisodeNotFoundError) Error() string {
	return fmt.Sprintf("show %d has no episode with absolute number %d", e.Show, e.Absolute)
}

func (e *EpisodeNotFoundError) Is(target error) bool {
	return target == ErrEpisodeNotFoundByAbsoluteNumber
}
