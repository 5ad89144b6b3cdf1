package main

import (
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/storefront/internal/models"
)

func sampleCatalog() []models.Product {
	return []models.Product{
		{
			Name:        "Wireless Headphones",
			Description: "High-quality wireless headphones with noise cancellation and 30-hour battery life.",
			Price:       decimal.RequireFromString("99.99"),
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
			Category:    "Electronics",
			Stock:       50,
			Rating:      4.5,
			ReviewCount: 120,
		},
		{
			Name:        "Smart Watch",
			Description: "Feature-rich smartwatch with fitness tracking, heart rate monitor, and smartphone connectivity.",
			Price:       decimal.RequireFromString("249.99"),
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500",
			Category:    "Electronics",
			Stock:       30,
			Rating:      4.7,
			ReviewCount: 89,
		},
		{
			Name:        "Laptop Backpack",
			Description: "Durable laptop backpack with padded compartments and USB charging port.",
			Price:       decimal.RequireFromString("49.99"),
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500",
			Category:    "Accessories",
			Stock:       75,
			Rating:      3.8,
			ReviewCount: 45,
		},
		{
			Name:        "Running Shoes",
			Description: "Comfortable running shoes with cushioned sole and breathable mesh upper.",
			Price:       decimal.RequireFromString("79.99"),
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
			Category:    "Clothing",
			Stock:       100,
			Rating:      4.6,
			ReviewCount: 200,
		},
		{
			Name:        "Coffee Maker",
			Description: "Programmable coffee maker with thermal carafe and auto-shutoff feature.",
			Price:       decimal.RequireFromString("89.99"),
			Image:       "https://images.unsplash.com/photo-1517487881594-2787fef5ebf7?w=500",
			Category:    "Home & Kitchen",
			Stock:       40,
			Rating:      4.4,
			ReviewCount: 67,
		},
		{
			Name:        "Yoga Mat",
			Description: "Non-slip yoga mat with carrying strap, perfect for all types of yoga practice.",
			Price:       decimal.RequireFromString("29.99"),
			Image:       "https://m.media-amazon.com/images/I/61d049-EBiL._AC_UF894,1000_QL80_.jpg",
			Category:    "Sports",
			Stock:       60,
			Rating:      3.6,
			ReviewCount: 34,
		},
		{
			Name:        "Bluetooth Speaker",
			Description: "Portable Bluetooth speaker with 360-degree sound and waterproof design.",
			Price:       decimal.RequireFromString("59.99"),
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500",
			Category:    "Electronics",
			Stock:       45,
			Rating:      4.5,
			ReviewCount: 156,
		},
		{
			Name:        "Desk Lamp",
			Description: "LED desk lamp with adjustable brightness and color temperature settings.",
			Price:       decimal.RequireFromString("39.99"),
			Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500",
			Category:    "Home & Kitchen",
			Stock:       55,
			Rating:      3.9,
			ReviewCount: 78,
		},
		{
			Name:        "Water Bottle",
			Description: "Insulated stainless steel water bottle that keeps drinks cold for 24 hours.",
			Price:       decimal.RequireFromString("24.99"),
			Image:       "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=500",
			Category:    "Accessories",
			Stock:       80,
			Rating:      4.6,
			ReviewCount: 92,
		},
		{
			Name:        "Wireless Mouse",
			Description: "Ergonomic wireless mouse with precision tracking and long battery life.",
			Price:       decimal.RequireFromString("34.99"),
			Image:       "https://images.unsplash.com/photo-1527814050087-3793815479db?w=500",
			Category:    "Electronics",
			Stock:       70,
			Rating:      3.5,
			ReviewCount: 123,
		},
		{
			Name:        "T-Shirt",
			Description: "100% cotton t-shirt with comfortable fit and various color options.",
			Price:       decimal.RequireFromString("19.99"),
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
			Category:    "Clothing",
			Stock:       150,
			Rating:      3.4,
			ReviewCount: 234,
		},
		{
			Name:        "Phone Case",
			Description: "Protective phone case with shock absorption and raised edges for screen protection.",
			Price:       decimal.RequireFromString("14.99"),
			Image:       "https://images.unsplash.com/photo-1556656793-08538906a9f8?w=500",
			Category:    "Accessories",
			Stock:       200,
			Rating:      3.7,
			ReviewCount: 189,
		},
	}
}
