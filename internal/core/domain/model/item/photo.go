package item

import (
	"errors"
	"fmt"

	"freight/internal/pkg/errs"
)

// ErrPhotoIsNotConstructed is returned when a Photo was not created through
// the NewPhoto constructor.
var ErrPhotoIsNotConstructed = errors.New("Photo must be created via NewPhoto constructor")

// Photo is a reference to an uploaded parcel image.
//
// Photos carry an explicit order value because the record store does not
// guarantee array ordering; display order, in particular which photo is the
// "first photo" shown for an item, is always determined by this value, never
// by slice position. The URL is opaque to the core.
type Photo struct {
	url           string
	order         int
	isConstructed bool
}

// NewPhoto creates a Photo with its blob URL and explicit ordering value.
func NewPhoto(url string, order int) (Photo, error) {
	if url == "" {
		return Photo{}, errs.NewValueIsRequiredError("photo url")
	}
	if order < 0 {
		return Photo{}, errs.NewValueIsInvalidErrorWithCause(
			"photo order",
			fmt.Errorf("%d is negative", order),
		)
	}

	return Photo{url: url, order: order, isConstructed: true}, nil
}

// Validate ensures the Photo was created via NewPhoto.
func (p Photo) Validate() error {
	if !p.isConstructed {
		return ErrPhotoIsNotConstructed
	}
	return nil
}

// URL returns the opaque blob URL of the image.
func (p Photo) URL() string {
	return p.url
}

// Order returns the explicit ordering value of the photo.
func (p Photo) Order() int {
	return p.order
}
