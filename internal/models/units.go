package models

import "github.com/google/uuid"

// UnitID — целочисленный идентификатор пиццерии в легаси-поверхностях
// (офис-менеджер, менеджер смены, публичный API). Не взаимозаменяем с UUID
// приватного API: пространства идентификаторов разные.
type UnitID int

// Unit описывает пиццерию в справочнике: легаси-идентификатор, имя и UUID
// нового приватного API.
type Unit struct {
	ID   UnitID    `json:"id"`
	Name string    `json:"name"`
	UUID uuid.UUID `json:"uuid"`
}

// UnitsByName строит индекс имя → пиццерия.
func UnitsByName(units []Unit) map[string]Unit {
	index := make(map[string]Unit, len(units))
	for _, unit := range units {
		index[unit.Name] = unit
	}
	return index
}

// UnitsByID строит индекс идентификатор → пиццерия.
func UnitsByID(units []Unit) map[UnitID]Unit {
	index := make(map[UnitID]Unit, len(units))
	for _, unit := range units {
		index[unit.ID] = unit
	}
	return index
}
