package storeinfo

import "github.com/angelmondragon/storefront-backend/pkg/config"

// Contact holds the store's public contact channels.
type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Address  string `json:"address"`
	Hours    string `json:"hours"`
}

// Policy is one customer-facing store policy.
type Policy struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// Info is the static store information served to every shopper.
type Info struct {
	Contact  Contact  `json:"contact"`
	Policies []Policy `json:"policies"`
}

var defaultPolicies = []Policy{
	{
		Title:       "Easy Exchange Policy",
		Description: "Hassle-free exchanges within 30 days of purchase. No questions asked.",
		Features:    []string{"30-day exchange window", "No restocking fees", "Free return shipping"},
	},
	{
		Title:       "7 Days Return Policy",
		Description: "Not satisfied? Return any item within 7 days for a full refund.",
		Features:    []string{"7-day return window", "Full refund guarantee", "Quick processing"},
	},
	{
		Title:       "24/7 Customer Support",
		Description: "Our dedicated team is available around the clock to assist you.",
		Features:    []string{"24/7 live chat support", "Phone & email support", "Expert assistance"},
	},
}

// Service serves read-only store information.
type Service struct {
	info Info
}

// NewService builds the store info from configuration.
func NewService(cfg config.ContactConfig) *Service {
	return &Service{info: Info{
		Contact: Contact{
			Email:    cfg.Email,
			Phone:    cfg.Phone,
			WhatsApp: cfg.WhatsApp,
			Address:  cfg.Address,
			Hours:    cfg.Hours,
		},
		Policies: defaultPolicies,
	}}
}

// Info returns a copy of the store information.
func (s *Service) Info() Info {
	out := s.info
	out.Policies = make([]Policy, len(s.info.Policies))
	for i, p := range s.info.Policies {
		p.Features = append([]string(nil), p.Features...)
		out.Policies[i] = p
	}
	return out
}
