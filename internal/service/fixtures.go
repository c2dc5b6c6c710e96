package service

import "courtside/internal/domain"

// Seed data served until a real catalog backend exists.

func fixtureComplexes() []domain.Complex {
	return []domain.Complex{
		{
			ID:       "1",
			Name:     "Complejo Deportivo Central",
			City:     "Buenos Aires",
			Distance: 1.2,
			Address:  "Av. Rivadavia 1500",
			Image:    "https://images.unsplash.com/photo-1486882430381-e76d701e0a3e?ixlib=rb-1.2.1&auto=format&fit=crop&w=1050&q=80",
		},
		{
			ID:       "2",
			Name:     "Club Deportivo Norte",
			City:     "Córdoba",
			Distance: 2.5,
			Address:  "Calle San Martín 450",
			Image:    "https://images.unsplash.com/photo-1574629810360-7efbbe195018?ixlib=rb-1.2.1&auto=format&fit=crop&w=1050&q=80",
		},
		{
			ID:       "3",
			Name:     "Polideportivo Municipal",
			City:     "Rosario",
			Distance: 3.8,
			Address:  "Av. Pellegrini 2000",
			Image:    "https://images.unsplash.com/photo-1523297456374-f29452e221d2?ixlib=rb-1.2.1&auto=format&fit=crop&w=1050&q=80",
		},
		{
			ID:       "4",
			Name:     "Club Atlético River",
			City:     "Buenos Aires",
			Distance: 4.2,
			Address:  "Av. Libertador 7500",
			Image:    "https://images.unsplash.com/photo-1524549110215-6624d76a0b0b?ixlib=rb-1.2.1&auto=format&fit=crop&w=1050&q=80",
		},
		{
			ID:       "5",
			Name:     "Club Deportivo Sur",
			City:     "Mendoza",
			Distance: 5.0,
			Address:  "Calle Belgrano 600",
			Image:    "https://images.unsplash.com/photo-1489805549589-3c5ae55fe740?ixlib=rb-1.2.1&auto=format&fit=crop&w=1050&q=80",
		},
	}
}

func fixtureMatches() []domain.Match {
	return []domain.Match{
		{
			ID:          "1",
			Name:        "Partido Amistoso",
			ComplexID:   "1",
			ComplexName: "Complejo Deportivo Central",
			Date:        "2023-10-25",
			Time:        "18:00",
			Players:     domain.PlayerCount{Current: 6, Required: 10},
			Level:       domain.LevelIntermedio,
			Description: "Partido amistoso de fútbol 5. Todos son bienvenidos!",
		},
		{
			ID:          "2",
			Name:        "Partido Rápido",
			ComplexID:   "2",
			ComplexName: "Club Deportivo Norte",
			Date:        "2023-10-26",
			Time:        "19:30",
			Players:     domain.PlayerCount{Current: 4, Required: 8},
			Level:       domain.LevelNovato,
			Description: "Para principiantes, buen ambiente y sin presiones.",
		},
		{
			ID:          "3",
			Name:        "Torneo Semiprofesional",
			ComplexID:   "3",
			ComplexName: "Polideportivo Municipal",
			Date:        "2023-10-27",
			Time:        "20:00",
			Players:     domain.PlayerCount{Current: 8, Required: 10},
			Level:       domain.LevelAvanzado,
			Description: "Nivel competitivo, se recomienda experiencia previa.",
		},
		{
			ID:          "4",
			Name:        "Entrenamiento Grupal",
			ComplexID:   "4",
			ComplexName: "Club Atlético River",
			Date:        "2023-10-28",
			Time:        "17:00",
			Players:     domain.PlayerCount{Current: 5, Required: 12},
			Level:       domain.LevelIntermedio,
			Description: "Entrenamiento y partido amistoso para mejorar habilidades.",
		},
		{
			ID:          "5",
			Name:        "Partido Recreativo",
			ComplexID:   "5",
			ComplexName: "Club Deportivo Sur",
			Date:        "2023-10-29",
			Time:        "16:30",
			Players:     domain.PlayerCount{Current: 3, Required: 6},
			Level:       domain.LevelNovato,
			Description: "Para pasar un buen rato entre amigos.",
		},
		{
			ID:          "6",
			Name:        "Liga Amateur",
			ComplexID:   "1",
			ComplexName: "Complejo Deportivo Central",
			Date:        "2023-10-30",
			Time:        "19:00",
			Players:     domain.PlayerCount{Current: 7, Required: 10},
			Level:       domain.LevelIntermedio,
			Description: "Partido de liga amateur, ambiente competitivo pero amistoso.",
		},
		{
			ID:          "7",
			Name:        "Campeonato Local",
			ComplexID:   "2",
			ComplexName: "Club Deportivo Norte",
			Date:        "2023-10-31",
			Time:        "18:30",
			Players:     domain.PlayerCount{Current: 9, Required: 12},
			Level:       domain.LevelAvanzado,
			Description: "Alta competencia, se requiere buen nivel técnico.",
		},
	}
}
