package main

import (
	"context"
	"log"

	"github.com/recipehub/backend/config"
	"github.com/recipehub/backend/internal/database"
	"github.com/recipehub/backend/internal/service"
	"github.com/recipehub/backend/internal/types"
)

var seedRecipes = []types.CreateRecipeCommand{
	{
		Name:              "Tomato Soup",
		TimeToCookHours:   0,
		TimeToCookMinutes: 30,
		Method:            "Simmer the tomatoes with stock, then blend until smooth.",
		IsVegetarian:      true,
		IsVegan:           true,
		Ingredients: []types.CreateIngredientCommand{
			{Name: "Tomatoes", Quantity: 800, Unit: "g"},
			{Name: "Vegetable stock", Quantity: 1, Unit: "L"},
			{Name: "Olive oil", Quantity: 2, Unit: "tbsp"},
		},
	},
	{
		Name:              "Beef Bolognese",
		TimeToCookHours:   2,
		TimeToCookMinutes: 15,
		Method:            "Brown the beef, add the sauce base and simmer low and slow.",
		Ingredients: []types.CreateIngredientCommand{
			{Name: "Minced beef", Quantity: 500, Unit: "g"},
			{Name: "Passata", Quantity: 700, Unit: "ml"},
			{Name: "Onion", Quantity: 1, Unit: ""},
		},
	},
	{
		Name:              "Chickpea Curry",
		TimeToCookHours:   0,
		TimeToCookMinutes: 45,
		Method:            "Fry the spices, add chickpeas and coconut milk, reduce until thick.",
		IsVegetarian:      true,
		IsVegan:           true,
		Ingredients: []types.CreateIngredientCommand{
			{Name: "Chickpeas", Quantity: 400, Unit: "g"},
			{Name: "Coconut milk", Quantity: 400, Unit: "ml"},
			{Name: "Curry powder", Quantity: 2, Unit: "tbsp"},
		},
	},
	{
		Name:              "Pancakes",
		TimeToCookHours:   0,
		TimeToCookMinutes: 20,
		Method:            "Whisk the batter and fry ladlefuls until golden on both sides.",
		IsVegetarian:      true,
		Ingredients: []types.CreateIngredientCommand{
			{Name: "Flour", Quantity: 200, Unit: "g"},
			{Name: "Milk", Quantity: 300, Unit: "ml"},
			{Name: "Eggs", Quantity: 2, Unit: ""},
		},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	recipes := service.NewRecipeService(db)
	ctx := context.Background()

	for _, cmd := range seedRecipes {
		id, err := recipes.CreateRecipe(ctx, cmd)
		if err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", cmd.Name, err)
		}
		log.Printf("Seeded recipe %q with id %d", cmd.Name, id)
	}
}
