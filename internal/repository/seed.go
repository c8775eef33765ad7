package repository

import "github.com/artifyai/storefront/internal/model"

// seedPrice is the gallery list price (49.99) converted to minor units the
// same way the storefront does it everywhere else: floor(price * 100).
const seedPrice = 4999

// SeedArtworks returns the fixed initial gallery, loaded exactly once at
// storage startup. Every backend feeds these through its normal create path
// so seeded artworks get ids 1..8 from the same counter as API-created ones.
func SeedArtworks() []model.InsertArtwork {
	return []model.InsertArtwork{
		{
			Title:       "Diamond Serpent",
			Description: "A mesmerizing snake adorned with diamonds, its gem-like eyes gleaming against a rich red backdrop.",
			Prompt:      "Cosmic dreamscape with ethereal energies and vibrant colors",
			ImageURL:    "/attached_assets/video_1_20250403_214948.mp4",
			Style:       "surreal",
			BasePrice:   seedPrice,
			StyleSettings: &model.StyleSettings{
				AbstractToRealistic: 30,
				WarmToCool:          60,
				MinimalToDetailed:   75,
				ArtisticInfluence:   "surrealism",
			},
		},
		{
			Title:       "Neon Futurism",
			Description: "A vibrant cityscape where cyberpunk aesthetics meet technological dreams.",
			Prompt:      "Neon cyberpunk city with futuristic technology and bright colors",
			ImageURL:    "/attached_assets/video_2_20250403_214950.mp4",
			Style:       "surreal",
			BasePrice:   seedPrice,
			StyleSettings: &model.StyleSettings{
				AbstractToRealistic: 60,
				WarmToCool:          20,
				MinimalToDetailed:   90,
				ArtisticInfluence:   "cyberpunk",
			},
		},
		{
			Title:       "Serene Abstraction",
			Description: "Flowing forms and gentle colors create a meditative visual experience.",
			Prompt:      "Flowing abstract forms with gentle pastel colors for meditation",
			ImageURL:    "/attached_assets/video_3_20250403_214952.mp4",
			Style:       "abstract",
			BasePrice:   seedPrice,
			StyleSettings: &model.StyleSettings{
				AbstractToRealistic: 10,
				WarmToCool:          70,
				MinimalToDetailed:   30,
				ArtisticInfluence:   "minimalism",
			},
		},
		{
			Title:       "Mystical Forest",
			Description: "An enchanted woodland scene with magical lighting and fantastical elements.",
			Prompt:      "Mystical forest with magical lighting and fantasy elements",
			ImageURL:    "/attached_assets/video_4_20250403_214953.mp4",
			Style:       "landscape",
			BasePrice:   seedPrice,
			StyleSettings: &model.StyleSettings{
				AbstractToRealistic: 75,
				WarmToCool:          40,
				MinimalToDetailed:   85,
				ArtisticInfluence:   "ghibli",
			},
		},
		{
			Title:       "Urban Rhythm",
			Description: "Powerful brushstrokes capture the emotion and energy of metropolitan life.",
			Prompt:      "Urban cityscape with dynamic brushstrokes capturing energy",
			ImageURL:    "/attached_assets/video_5_20250403_214954.mp4",
			Style:       "abstract",
			BasePrice:   seedPrice,
			StyleSettings: &model.StyleSettings{
				AbstractToRealistic: 50,
				WarmToCool:          30,
				MinimalToDetailed:   65,
				ArtisticInfluence:   "vangogh",
			},
		},
		{
			Title:       "Dreamy Portrait",
			Description: "Ethereal portrait style with soft focus and luminous colors.",
			Prompt:      "Ethereal portrait with soft focus and luminous colors",
			ImageURL:    "/attached_assets/video_1_20250403_213838.mp4",
			Style:       "portrait",
			BasePrice:   seedPrice,
			StyleSettings: &model.StyleSettings{
				AbstractToRealistic: 65,
				WarmToCool:          60,
				MinimalToDetailed:   45,
				ArtisticInfluence:   "artnouveau",
			},
		},
		{
			Title:       "Geometric Wonder",
			Description: "Bold geometric patterns create an optical illusion of depth and movement.",
			Prompt:      "Bold geometric patterns creating optical illusion of depth",
			ImageURL:    "/attached_assets/video_2_20250403_213848.mp4",
			Style:       "abstract",
			BasePrice:   seedPrice,
			StyleSettings: &model.StyleSettings{
				AbstractToRealistic: 20,
				WarmToCool:          50,
				MinimalToDetailed:   80,
				ArtisticInfluence:   "popart",
			},
		},
		{
			Title:       "Nostalgic Sunset",
			Description: "A warm, hazy sunset vista with nostalgic retro-futuristic elements.",
			Prompt:      "Warm hazy sunset with nostalgic retro-futuristic elements",
			ImageURL:    "/attached_assets/video_3_20250403_213849.mp4",
			Style:       "landscape",
			BasePrice:   seedPrice,
			StyleSettings: &model.StyleSettings{
				AbstractToRealistic: 70,
				WarmToCool:          25,
				MinimalToDetailed:   60,
				ArtisticInfluence:   "vaporwave",
			},
		},
	}
}
