package manager

import (
	"time"

	"github.com/kasuboski/sceneid/pkg/pagination"
)

type AddShowRequest struct {
	ID        int64  `json:"id" validate:"required,gt=0,lte=2147483647"`
	AltID     int64  `json:"altId,omitempty" validate:"gte=0,lte=2147483647"`
	Name      string `json:"name" validate:"required"`
	AltName   string `json:"altName,omitempty"`
	Anime     bool   `json:"anime"`
	StartYear int32  `json:"startYear,omitempty" validate:"omitempty,gte=1900,lte=2200"`
}

type AddAliasRequest struct {
	ShowID int64  `json:"showId" validate:"required,gt=0,lte=2147483647"`
	Name   string `json:"name" validate:"required"`
}

type AddEpisodeRequest struct {
	ShowID         int64  `json:"showId" validate:"required,gt=0,lte=2147483647"`
	Season         int32  `json:"season" validate:"gte=0"`
	Episode        int32  `json:"episode" validate:"gt=0"`
	AbsoluteNumber *int32 `json:"absoluteNumber,omitempty" validate:"omitempty,gt=0"`
}

// ShowSummary is a stored show with counts of what belongs to it
type ShowSummary struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	AltName   string     `json:"altName,omitempty"`
	Anime     bool       `json:"anime"`
	StartYear int32      `json:"startYear,omitempty"`
	Episodes  int        `json:"episodes"`
	Aliases   []string   `json:"aliases"`
	Added     *time.Time `json:"added,omitempty"`
}

type ShowPage struct {
	Shows      []ShowSummary   `json:"shows"`
	Pagination pagination.Meta `json:"pagination"`
}
