package game

import "github.com/appengine-ltd/dungeon-crawler/internal/curmax"

type Stats struct {
	HP   curmax.CurMax[uint8] `json:"hp"`
	Mana curmax.CurMax[uint8] `json:"mana"`
	Atk  uint8                `json:"atk"`
	Def  uint8                `json:"def"`
	Gold float32              `json:"gold"`
}

func startingStats() Stats {
	return Stats{
		HP:   curmax.New[uint8](100, 100),
		Mana: curmax.New[uint8](100, 100),
		Atk:  5,
		Def:  0,
		Gold: 0,
	}
}
