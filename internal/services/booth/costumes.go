package booth

import (
	"strings"

	"github.com/phambaophuc/ai-photobooth/internal/models"
)

var costumes = []string{
	// Headwear
	"Wizard Hat", "Pirate Hat", "Graduation Cap", "Bunny Ears", "Sombrero",
	"Chef Hat", "Crown", "Astronaut Helmet", "Flower Crown",

	// Auras & Visuals
	"Fire Aura", "Ice Aura", "Lightning Sparks", "Magical Glow", "Floating Emoji Hearts",
	"Bubble Effects", "Sparkles", "Disco Lights", "Rainbow Trail",

	// Costumes/Props
	"Ninja", "Cat Costume", "Dripped Out Clothes", "Bow Tie", "Eye Patch", "Pilot",
	"Maid", "Sunglasses", "Lightsaber", "Cape", "Necklaces", "Vintage Clothes",
	"Kimono Robe", "Magic Wand",

	// Wacky
	"Deal With It Glasses", "Shrek's Ears", "Pikachu's Ears", "Rubber Ducky", "Hot Dog Suit",

	// Modern
	"Gaming Headset", "Hacker Hoodie", "Cyberpunk Glow", "AR Glasses",
}

func (s *Service) Costumes() []string {
	out := make([]string, len(costumes))
	copy(out, costumes)
	return out
}

// RandomCostumes picks n distinct suggestions; n <= 0 uses the configured default.
func (s *Service) RandomCostumes(n int) models.CostumeSelection {
	if n <= 0 {
		n = s.booth.RandomCostume
	}
	if n <= 0 {
		n = 3
	}
	if n > len(costumes) {
		n = len(costumes)
	}

	s.rngMu.Lock()
	perm := s.rng.Perm(len(costumes))
	s.rngMu.Unlock()

	items := make([]string, n)
	for i := range items {
		items[i] = costumes[perm[i]]
	}

	return models.CostumeSelection{
		Items:  items,
		Prompt: strings.Join(items, ", "),
	}
}
