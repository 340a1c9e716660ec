package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bagaskara/polisku/app/repository"
	"github.com/bagaskara/polisku/internal/pkg/viewmodel"
)

// APIServer implements the JSON API surface
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// Pong is the ping response payload
type Pong struct {
	Ping string `json:"ping"`
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetPolicies returns the stored policy collection, newest first, with the
// same formatted row shape the HTML listing uses. Session auth is enforced
// by middleware attached in the router.
func (s *APIServer) GetPolicies(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetPolicyRepository()

	records, err := repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "store_error",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"count":    len(records),
		"policies": viewmodel.NewPolicyRows(records),
	})
}
