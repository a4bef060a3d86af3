package handlers

import (
	"net/http"

	"github.com/Pooji-A/travelitineraryproject/internal/models"
	"github.com/gin-gonic/gin"
)

var destinationSuggestions = []models.Suggestion{
	{
		Destination: "Paris , The city of love",
		Description: "Explore the iconic landmarks of Paris with visits to the Eiffel Tower, Louvre Museum, and Notre-Dame Cathedral. Immerse yourself in the vibrant culture of Paris by attending a cabaret show at the Moulin Rouge, taking a leisurely stroll along the Champs-Élysées, and discovering the charm of its picturesque neighborhoods.",
	},
	{
		Destination: "Rome, The eternal city",
		Description: "Uncover the splendors of Rome, where the iconic Colosseum narrates tales of ancient glory. Traverse the historic Roman Forum, a living testament to the enduring legacy of the city, and be captivated by the artistic wonders of Vatican City, home to St. Peters Basilica and the timeless Sistine Chapel. Wander through the charming Trastevere districts cobblestone streets, explore the mysterious Roman Catacombs, and savor the elegance of the Spanish Steps. Immerse yourself in the art of Italian cuisine with a delightful cooking class, weaving together history, culture, and culinary delights in the heart of Rome.",
	},
	{
		Destination: "Barcelona, a Symphony of Colors",
		Description: "Embark on a sensory journey through Barcelona, where the Gothic quarters reveal architectural treasures and the iconic Sagrada Familia captivates with its unique beauty. Stroll along the vibrant La Rambla, absorbing the lively atmosphere of the city, and relish the sun-kissed beaches. Experience the passion of Spain with a flamenco show, be enchanted by the Magic Fountain of Montjuïc, and pedal through the green oasis of Vondelpark. Delve into the allure of the Red Light District, and explore the vibrant hues of the Flower Market.",
	},
	{
		Destination: "Prague, the Fairytale Capital",
		Description: "Embark on a captivating journey in Prague, where the historic charm of Prague Castle, the timeless allure of Charles Bridge, and the enchanting rhythms of Old Town Square with the Astronomical Clock await. Dive into the soul of the city with a scenic cruise on the Vltava River, a leisurely walk through Petřín Park, and an exploration of the rich cultural tapestry in the historic Jewish Quarter, creating an unforgettable symphony of history and leisure.",
	},
	{
		Destination: "Amsterdam, the City of Canals",
		Description: "Immerse yourself in the cultural gems of the city at the Anne Frank House, Van Gogh Museum, and Rijksmuseum, then soak in the charm with a canal cruise and a stroll through the Jordaan District. Dive into local life with a bike ride through Vondelpark, an exploration of the Red Light District, and a visit to the vibrant Flower Market, creating a perfect blend of art, history, and unique atmosphere of Amsterdam.",
	},
	{
		Destination: "Dubrovnik, the Pearl of the Adriatic",
		Description: "Uncover the charm of Dubrovnik with a visit to the historic City Walls, Old Town, and the elegant Rector Palace. Immerse yourself in the vibrancy of the city by strolling along Stradun (Placa) and embarking on a captivating Game of Thrones tour to explore filming locations, creating a perfect blend of rich history and cinematic allure.",
	},
	{
		Destination: "Edinburgh, the Regal Enclave",
		Description: "Experience the essence of Edinburgh by exploring the historic Edinburgh Castle, wandering down the Royal Mile, and hiking up to Arthur Seat for breathtaking views. Immerse yourself in the city mystique by climbing Calton Hill, joining a ghost tour in the Old Town, and, during the season, attending the world-renowned Edinburgh Festival Fringe, creating an unforgettable blend of history, nature, and cultural vibrancy.",
	},
}

// GetSuggestions returns the static destination suggestion catalogue.
func GetSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"suggestions": destinationSuggestions,
		"count":       len(destinationSuggestions),
	})
}
