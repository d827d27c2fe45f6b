package commands

import (
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// OfferRef addresses an offer of a store category
type OfferRef struct {
	StoreID    valueobjects.ID
	CategoryID valueobjects.ID
	OfferID    valueobjects.ID
}

// Validate validates the OfferRef
func (r OfferRef) Validate() error {
	if err := requireID("store ID", r.StoreID); err != nil {
		return err
	}
	if err := requireID("category ID", r.CategoryID); err != nil {
		return err
	}
	return requireID("offer ID", r.OfferID)
}

// CreateOfferCommand represents the command to create an offer in a store category
type CreateOfferCommand struct {
	StoreID    valueobjects.ID
	CategoryID valueobjects.ID
	Offer      *entities.Offer
}

// Validate validates the CreateOfferCommand
func (c CreateOfferCommand) Validate() error {
	if err := requireID("store ID", c.StoreID); err != nil {
		return err
	}
	if err := requireID("category ID", c.CategoryID); err != nil {
		return err
	}
	if c.Offer == nil {
		return pkgerrors.NewValidationError("offer is required")
	}
	return nil
}

// UpdateOfferCommand replaces a stored offer, tree included
type UpdateOfferCommand struct {
	StoreID    valueobjects.ID
	CategoryID valueobjects.ID
	Offer      *entities.Offer
}

// Validate validates the UpdateOfferCommand
func (c UpdateOfferCommand) Validate() error {
	return CreateOfferCommand(c).Validate()
}

// DeleteOfferCommand removes an offer
type DeleteOfferCommand struct {
	OfferRef
}

// AddCustomizationCommand attaches a customization to an offer. With a zero
// ParentCustomizationID it goes to the top level, otherwise under the option
// ParentOptionID of that customization.
type AddCustomizationCommand struct {
	OfferRef
	ParentCustomizationID valueobjects.ID
	ParentOptionID        valueobjects.ID
	Customization         *entities.Customization
}

// Validate validates the AddCustomizationCommand
func (c AddCustomizationCommand) Validate() error {
	if err := c.OfferRef.Validate(); err != nil {
		return err
	}
	if c.ParentCustomizationID.IsZero() != c.ParentOptionID.IsZero() {
		return pkgerrors.NewValidationError("parent customization ID and parent option ID go together")
	}
	if c.Customization == nil {
		return pkgerrors.NewValidationError("customization is required")
	}
	return nil
}

// Nested reports whether the customization goes under an option
func (c AddCustomizationCommand) Nested() bool {
	return !c.ParentCustomizationID.IsZero()
}

// UpdateCustomizationCommand replaces a customization anywhere in the offer tree
type UpdateCustomizationCommand struct {
	OfferRef
	Customization *entities.Customization
}

// Validate validates the UpdateCustomizationCommand
func (c UpdateCustomizationCommand) Validate() error {
	if err := c.OfferRef.Validate(); err != nil {
		return err
	}
	if c.Customization == nil {
		return pkgerrors.NewValidationError("customization is required")
	}
	return nil
}

// DeleteCustomizationCommand removes a customization anywhere in the offer tree
type DeleteCustomizationCommand struct {
	OfferRef
	CustomizationID valueobjects.ID
}

// Validate validates the DeleteCustomizationCommand
func (c DeleteCustomizationCommand) Validate() error {
	if err := c.OfferRef.Validate(); err != nil {
		return err
	}
	return requireID("customization ID", c.CustomizationID)
}

// AddOptionCommand appends an option to a customization of the offer tree
type AddOptionCommand struct {
	OfferRef
	CustomizationID valueobjects.ID
	Option          *entities.Option
}

// Validate validates the AddOptionCommand
func (c AddOptionCommand) Validate() error {
	if err := c.OfferRef.Validate(); err != nil {
		return err
	}
	if err := requireID("customization ID", c.CustomizationID); err != nil {
		return err
	}
	if c.Option == nil {
		return pkgerrors.NewValidationError("option is required")
	}
	return nil
}

// UpdateOptionCommand replaces an option of a customization
type UpdateOptionCommand struct {
	OfferRef
	CustomizationID valueobjects.ID
	Option          *entities.Option
}

// Validate validates the UpdateOptionCommand
func (c UpdateOptionCommand) Validate() error {
	return AddOptionCommand(c).Validate()
}

// DeleteOptionCommand removes an option of a customization
type DeleteOptionCommand struct {
	OfferRef
	CustomizationID valueobjects.ID
	OptionID        valueobjects.ID
}

// Validate validates the DeleteOptionCommand
func (c DeleteOptionCommand) Validate() error {
	if err := c.OfferRef.Validate(); err != nil {
		return err
	}
	if err := requireID("customization ID", c.CustomizationID); err != nil {
		return err
	}
	return requireID("option ID", c.OptionID)
}
