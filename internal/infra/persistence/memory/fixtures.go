// Package memory provides in-process implementations of the repository
// contracts, seeded with the demo catalog. It backs the mocked deployment
// mode where no database is configured.
package memory

import (
	"time"

	"nexprev/internal/domain/entity"
)

func seedPartners() []*entity.Partner {
	return []*entity.Partner{
		{
			ID:           "1",
			Name:         "Amazon Brasil",
			LogoURL:      "https://logo.clearbit.com/amazon.com.br",
			CashbackRate: 5,
			Category:     "Marketplace",
			Description:  "Tudo para sua casa com cashback em cada compra",
		},
		{
			ID:           "2",
			Name:         "Magazine Luiza",
			LogoURL:      "https://logo.clearbit.com/magazineluiza.com.br",
			CashbackRate: 3,
			Category:     "Varejo",
			Description:  "Eletrodomésticos e eletrônicos com as melhores taxas",
		},
		{
			ID:           "3",
			Name:         "Americanas",
			LogoURL:      "https://logo.clearbit.com/americanas.com.br",
			CashbackRate: 4,
			Category:     "Varejo",
			Description:  "Compre online e receba parte do valor de volta",
		},
		{
			ID:           "4",
			Name:         "Netflix",
			LogoURL:      "https://logo.clearbit.com/netflix.com",
			CashbackRate: 2,
			Category:     "Streaming",
			Description:  "Cashback na sua assinatura mensal",
		},
		{
			ID:           "5",
			Name:         "Spotify",
			LogoURL:      "https://logo.clearbit.com/spotify.com",
			CashbackRate: 1,
			Category:     "Streaming",
			Description:  "Música com retorno garantido",
		},
		{
			ID:           "6",
			Name:         "Uber",
			LogoURL:      "https://logo.clearbit.com/uber.com",
			CashbackRate: 3,
			Category:     "Mobilidade",
			Description:  "Cashback em todas as suas corridas",
		},
	}
}

func seedOffers() []*entity.Offer {
	return []*entity.Offer{
		{
			ID:          "1",
			Title:       "Semana do Consumidor",
			Description: "Cashback em dobro em todos os parceiros de varejo",
			ImageURL:    "https://images.nexprev.example.com/offers/semana-consumidor.jpg",
			PartnerID:   "1",
			Cashback:    10,
		},
		{
			ID:          "2",
			Title:       "Eletrônicos em oferta",
			Description: "Até 8% de volta em eletrônicos selecionados",
			ImageURL:    "https://images.nexprev.example.com/offers/eletronicos.jpg",
			PartnerID:   "2",
			Cashback:    8,
		},
		{
			ID:          "3",
			Title:       "Primeira assinatura",
			Description: "5% de cashback no primeiro mês de streaming",
			ImageURL:    "https://images.nexprev.example.com/offers/streaming.jpg",
			PartnerID:   "4",
			Cashback:    5,
		},
		{
			ID:          "4",
			Title:       "Corridas da semana",
			Description: "6% de volta em corridas de segunda a sexta",
			ImageURL:    "https://images.nexprev.example.com/offers/corridas.jpg",
			PartnerID:   "6",
			Cashback:    6,
		},
	}
}

func seedTransactions() map[string][]*entity.Transaction {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)

		return t
	}

	return map[string][]*entity.Transaction{
		// Statement for the demo customer account.
		"1": {
			{ID: "1", Store: "Amazon Brasil", Amount: 299.90, Cashback: 14.99, Status: "confirmado", CreatedAt: day("2025-01-15")},
			{ID: "2", Store: "Magazine Luiza", Amount: 1299.00, Cashback: 38.97, Status: "confirmado", CreatedAt: day("2025-01-10")},
			{ID: "3", Store: "Americanas", Amount: 89.90, Cashback: 3.60, Status: "pendente", CreatedAt: day("2025-01-08")},
			{ID: "4", Store: "Netflix", Amount: 44.90, Cashback: 0.90, Status: "confirmado", CreatedAt: day("2025-01-05")},
			{ID: "5", Store: "Uber", Amount: 32.50, Cashback: 0.98, Status: "confirmado", CreatedAt: day("2025-01-03")},
		},
	}
}

func seedProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID:          "1",
			MerchantID:  "1",
			Name:        "Camiseta básica",
			Description: "Camiseta 100% algodão, várias cores",
			Price:       49.90,
			Category:    "Vestuário",
			ImageURL:    "https://images.nexprev.example.com/products/camiseta.jpg",
			IsActive:    true,
			Stock:       120,
			CreatedAt:   time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			MerchantID:  "1",
			Name:        "Calça jeans",
			Description: "Calça jeans tradicional, tamanhos 36 a 48",
			Price:       159.90,
			Category:    "Vestuário",
			ImageURL:    "https://images.nexprev.example.com/products/calca.jpg",
			IsActive:    true,
			Stock:       45,
			CreatedAt:   time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			MerchantID:  "1",
			Name:        "Tênis esportivo",
			Description: "Tênis leve para corrida e caminhada",
			Price:       289.90,
			Category:    "Calçados",
			ImageURL:    "https://images.nexprev.example.com/products/tenis.jpg",
			IsActive:    false,
			Stock:       0,
			CreatedAt:   time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedMerchantOffers() []*entity.MerchantOffer {
	return []*entity.MerchantOffer{
		{
			ID:                 "1",
			MerchantID:         "1",
			ProductID:          "1",
			Title:              "Leve 3, pague 2",
			Description:        "Na compra de três camisetas básicas, a mais barata sai de graça",
			DiscountPercentage: 33,
			ValidFrom:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			ValidUntil:         time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			IsActive:           true,
			CreatedAt:          time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                "2",
			MerchantID:        "1",
			Title:             "Frete grátis acima de R$ 200",
			Description:       "Entrega gratuita para compras acima de duzentos reais",
			MinPurchaseAmount: 200,
			ValidFrom:         time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			ValidUntil:        time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
			IsActive:          true,
			CreatedAt:         time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedCustomerSummaries() []*entity.CustomerSummary {
	return []*entity.CustomerSummary{
		{
			ID:             "1",
			Name:           "João Silva",
			Email:          "teste@teste.com",
			Phone:          "(11) 99999-9999",
			TotalPurchases: 1766.20,
			LastPurchase:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			CashbackEarned: 59.44,
			IsActive:       true,
		},
		{
			ID:             "2",
			Name:           "Maria Souza",
			Email:          "maria@exemplo.com",
			Phone:          "(11) 98888-7777",
			TotalPurchases: 843.50,
			LastPurchase:   time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
			CashbackEarned: 27.10,
			IsActive:       true,
		},
		{
			ID:             "3",
			Name:           "Carlos Pereira",
			Email:          "carlos@exemplo.com",
			Phone:          "(21) 97777-6666",
			TotalPurchases: 120.00,
			LastPurchase:   time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
			CashbackEarned: 4.80,
			IsActive:       false,
		},
	}
}
