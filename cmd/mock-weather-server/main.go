// Command mock-weather-server serves canned OpenWeatherMap responses for local
// development. Point OPENWEATHERMAP_API_BASE_URL at it.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

type condition struct {
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type mainBlock struct {
	Temp    float64 `json:"temp"`
	TempMin float64 `json:"temp_min"`
	TempMax float64 `json:"temp_max"`
}

type cityWeather struct {
	Name    string
	Country string
	Temp    float64
	Icon    string
	Desc    string
}

var cities = map[string]cityWeather{
	"ankara":   {Name: "Ankara", Country: "TR", Temp: 21.6, Icon: "01d", Desc: "açık"},
	"istanbul": {Name: "İstanbul", Country: "TR", Temp: 18.2, Icon: "03d", Desc: "parçalı bulutlu"},
	"izmir":    {Name: "İzmir", Country: "TR", Temp: 25.4, Icon: "02d", Desc: "az bulutlu"},
	"london":   {Name: "London", Country: "GB", Temp: 12.0, Icon: "10d", Desc: "hafif yağmur"},
}

// forecastHours are the 3-hour slots emitted for each forecast day
var forecastHours = []string{"00:00:00", "03:00:00", "06:00:00", "09:00:00", "12:00:00", "15:00:00", "18:00:00", "21:00:00"}

func main() {
	gin.SetMode(gin.ReleaseMode)

	port := os.Getenv("MOCK_WEATHER_PORT")
	if port == "" {
		port = "8081"
	}

	slog.Info("Mock Weather API server starting", "port", port)
	if err := newRouter().Run(":" + port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func newRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/weather", func(c *gin.Context) {
		city, ok := lookup(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"cod":     http.StatusOK,
			"name":    city.Name,
			"sys":     gin.H{"country": city.Country},
			"main":    mainBlock{Temp: city.Temp, TempMin: city.Temp - 2, TempMax: city.Temp + 2},
			"weather": []condition{{Icon: city.Icon, Description: city.Desc}},
		})
	})

	r.GET("/forecast", func(c *gin.Context) {
		city, ok := lookup(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"cod":  "200",
			"list": forecastList(city),
		})
	})

	return r
}

// lookup validates the common query parameters and writes the error response itself
func lookup(c *gin.Context) (cityWeather, bool) {
	if c.Query("appid") == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"cod": 401, "message": "Invalid API key. Please see https://openweathermap.org/faq#error401 for more info."})
		return cityWeather{}, false
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("q")))
	switch query {
	case "":
		c.JSON(http.StatusBadRequest, gin.H{"cod": "400", "message": "Nothing to geocode"})
		return cityWeather{}, false
	case "servererror":
		c.JSON(http.StatusInternalServerError, gin.H{"cod": "500"})
		return cityWeather{}, false
	case "garbage":
		c.String(http.StatusOK, "<html>not json</html>")
		return cityWeather{}, false
	}

	city, exists := cities[query]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"cod": "404", "message": "city not found"})
		return cityWeather{}, false
	}
	return city, true
}

// forecastList emits five fixed days so responses are reproducible
func forecastList(city cityWeather) []gin.H {
	list := make([]gin.H, 0, 5*len(forecastHours))
	for day := 1; day <= 5; day++ {
		for i, hour := range forecastHours {
			temp := city.Temp + float64(i-4)
			list = append(list, gin.H{
				"dt_txt":  fmt.Sprintf("2024-01-%02d %s", day, hour),
				"main":    mainBlock{Temp: temp, TempMin: temp - 1, TempMax: temp + 1},
				"weather": []condition{{Icon: city.Icon, Description: city.Desc}},
			})
		}
	}
	return list
}
