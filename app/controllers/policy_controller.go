package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/bagaskara/polisku/app/forms"
	"github.com/bagaskara/polisku/app/repository"
	"github.com/bagaskara/polisku/internal/pkg/currency"
	"github.com/bagaskara/polisku/internal/pkg/policynumber"
	"github.com/bagaskara/polisku/internal/pkg/usercontext"
	"github.com/bagaskara/polisku/internal/pkg/viewmodel"
)

func policyRepo() repository.PolicyRepository {
	return repository.GetGlobalFactory().GetPolicyRepository()
}

// formFields are the fields the browser posts. The policy number is never
// posted (generated on create, route-keyed on update) and premium_price is
// derived, so feeding the others through the form controller is enough.
var formFields = []string{
	forms.FieldInsuredName,
	forms.FieldPolicyEffectiveDate,
	forms.FieldPolicyExpirationDate,
	forms.FieldVehicleBrand,
	forms.FieldVehicleType,
	forms.FieldVehicleYear,
	forms.FieldVehiclePrice,
	forms.FieldPremiumRate,
}

func populateForm(c *fiber.Ctx, form *forms.PolicyForm) {
	for _, name := range formFields {
		form.Set(name, c.FormValue(name))
	}
}

func renderPolicyIndex(c *fiber.Ctx, form *forms.PolicyForm, editing string) error {
	flashData := flash.Get(c)

	records, err := policyRepo().GetAll()
	if err != nil {
		// Surface the store's failure verbatim; the collection stays empty
		// until a later load succeeds.
		flashData = fiber.Map{"type": "error", "message": err.Error()}
		records = nil
	}

	return c.Render("policy/index", fiber.Map{
		"Title":          "Insurance Policy Manager",
		"CSRFToken":      csrfToken(c),
		"Flash":          flashData,
		"Username":       usercontext.GetUsername(c),
		"Form":           form.Values(),
		"Editing":        editing,
		"Rows":           viewmodel.NewPolicyRows(records),
		"MaxYear":        time.Now().Year() + 1,
		"PriceDisplay":   currency.FormatString(form.Get(forms.FieldVehiclePrice)),
		"PremiumDisplay": currency.FormatString(form.Get(forms.FieldPremiumPrice)),
	}, "layouts/main")
}

// HandlePolicyIndex shows the management view in create mode: an empty form
// plus the stored collection, newest first.
func HandlePolicyIndex(c *fiber.Ctx) error {
	return renderPolicyIndex(c, forms.NewPolicyForm(), "")
}

// HandlePolicyEdit is the begin-edit intent: it loads the record behind the
// route's policy number into the form buffer and re-renders the management
// view in edit mode.
func HandlePolicyEdit(c *fiber.Ctx) error {
	policyNumber := c.Params("policy_number")

	record, err := policyRepo().GetByPolicyNumber(policyNumber)
	if err != nil {
		fm := fiber.Map{"type": "error", "message": "Policy not found"}
		return flash.WithError(c, fm).Redirect("/policies")
	}

	form := forms.NewPolicyForm()
	form.LoadInitial(record)

	return renderPolicyIndex(c, form, record.PolicyNumber)
}

// HandlePolicyStore creates a brand-new policy record: posted fields go
// through the form controller, the policy number is generated from the
// current collection size, and the acting session's user id is attached.
// The collection is never mutated optimistically; the redirect re-issues the
// full load.
func HandlePolicyStore(c *fiber.Ctx) error {
	form := forms.NewPolicyForm()
	populateForm(c, form)

	policy, err := form.Submit()
	if err != nil {
		fm := fiber.Map{"type": "error", "message": err.Error()}
		return flash.WithError(c, fm).Redirect("/policies")
	}

	count, err := policyRepo().Count()
	if err != nil {
		fm := fiber.Map{"type": "error", "message": err.Error()}
		return flash.WithError(c, fm).Redirect("/policies")
	}

	policy.PolicyNumber = policynumber.Next(time.Now(), count)
	policy.UserID = usercontext.GetUserID(c)

	if err := policyRepo().Create(&policy); err != nil {
		fm := fiber.Map{"type": "error", "message": err.Error()}
		return flash.WithError(c, fm).Redirect("/policies")
	}

	fm := fiber.Map{"type": "success", "message": "New policy created successfully!"}
	return flash.WithSuccess(c, fm).Redirect("/policies")
}

// HandlePolicyUpdate replaces the full record behind the route's policy
// number with the submitted buffer. The policy number itself is immutable
// and the update timestamp is stamped here, not by the store.
func HandlePolicyUpdate(c *fiber.Ctx) error {
	policyNumber := c.Params("policy_number")

	existing, err := policyRepo().GetByPolicyNumber(policyNumber)
	if err != nil {
		fm := fiber.Map{"type": "error", "message": "Policy not found"}
		return flash.WithError(c, fm).Redirect("/policies")
	}

	form := forms.NewPolicyForm()
	populateForm(c, form)

	submitted, err := form.Submit()
	if err != nil {
		fm := fiber.Map{"type": "error", "message": err.Error()}
		return flash.WithError(c, fm).Redirect("/policies")
	}

	existing.InsuredName = submitted.InsuredName
	existing.PolicyEffectiveDate = submitted.PolicyEffectiveDate
	existing.PolicyExpirationDate = submitted.PolicyExpirationDate
	existing.VehicleBrand = submitted.VehicleBrand
	existing.VehicleType = submitted.VehicleType
	existing.VehicleYear = submitted.VehicleYear
	existing.VehiclePrice = submitted.VehiclePrice
	existing.PremiumRate = submitted.PremiumRate
	existing.PremiumPrice = submitted.PremiumPrice
	existing.UpdatedAt = time.Now()

	if err := policyRepo().Update(existing); err != nil {
		fm := fiber.Map{"type": "error", "message": err.Error()}
		return flash.WithError(c, fm).Redirect("/policies")
	}

	fm := fiber.Map{"type": "success", "message": "Policy updated successfully!"}
	return flash.WithSuccess(c, fm).Redirect("/policies")
}

// HandlePolicyDelete removes the record behind the route's policy number.
// The confirmation prompt lives in the listing template.
func HandlePolicyDelete(c *fiber.Ctx) error {
	policyNumber := c.Params("policy_number")

	if err := policyRepo().DeleteByPolicyNumber(policyNumber); err != nil {
		fm := fiber.Map{"type": "error", "message": err.Error()}
		return flash.WithError(c, fm).Redirect("/policies")
	}

	fm := fiber.Map{"type": "success", "message": "Policy deleted successfully!"}
	return flash.WithSuccess(c, fm).Redirect("/policies")
}
