package domain

import (
	"strings"
)

// Canonical operation values.
const (
	OperationSale   = "sale"
	OperationRental = "rental"
)

// Canonical property types.
const (
	TypeHouse               = "house"
	TypeApartment           = "apartment"
	TypeLand                = "land"
	TypeLot                 = "lot"
	TypeCommercial          = "commercial"
	TypeOffice              = "office"
	TypeWarehouse           = "warehouse"
	TypeIndustrialWarehouse = "industrial_warehouse"
	TypeBuilding            = "building"
	TypePenthouse           = "penthouse"
	TypeLoft                = "loft"
	TypeVilla               = "villa"
	TypeRanch               = "ranch"
	TypeDoctorOffice        = "doctor_office"
	TypeBedroom             = "bedroom"
	TypeHouseInCondo        = "house_in_condo"
	TypeHouseWithLandUse    = "house_with_land_use"
	TypeOther               = "other"
)

// propertyTypeTable maps lowercased raw labels (remote vocabulary plus the
// Spanish labels found in hand-entered records) onto canonical types.
var propertyTypeTable = map[string]string{
	"casa":                  TypeHouse,
	"casas":                 TypeHouse,
	"house":                 TypeHouse,
	"houses":                TypeHouse,
	"departamento":          TypeApartment,
	"departamentos":         TypeApartment,
	"depto":                 TypeApartment,
	"apartment":             TypeApartment,
	"apartments":            TypeApartment,
	"terreno":               TypeLand,
	"terrenos":              TypeLand,
	"land":                  TypeLand,
	"lote":                  TypeLot,
	"lotes":                 TypeLot,
	"lot":                   TypeLot,
	"local":                 TypeCommercial,
	"local comercial":       TypeCommercial,
	"locales":               TypeCommercial,
	"commercial":            TypeCommercial,
	"commercial premises":   TypeCommercial,
	"oficina":               TypeOffice,
	"oficinas":              TypeOffice,
	"office":                TypeOffice,
	"bodega":                TypeWarehouse,
	"bodegas":               TypeWarehouse,
	"warehouse":             TypeWarehouse,
	"bodega industrial":     TypeIndustrialWarehouse,
	"nave industrial":       TypeIndustrialWarehouse,
	"industrial warehouse":  TypeIndustrialWarehouse,
	"edificio":              TypeBuilding,
	"edificios":             TypeBuilding,
	"building":              TypeBuilding,
	"penthouse":             TypePenthouse,
	"ph":                    TypePenthouse,
	"loft":                  TypeLoft,
	"villa":                 TypeVilla,
	"villas":                TypeVilla,
	"rancho":                TypeRanch,
	"ranchos":               TypeRanch,
	"ranch":                 TypeRanch,
	"consultorio":           TypeDoctorOffice,
	"consultorios":          TypeDoctorOffice,
	"doctor office":         TypeDoctorOffice,
	"doctor's office":       TypeDoctorOffice,
	"recamara":              TypeBedroom,
	"recámara":              TypeBedroom,
	"habitacion":            TypeBedroom,
	"habitación":            TypeBedroom,
	"bedroom":               TypeBedroom,
	"casa en condominio":    TypeHouseInCondo,
	"house in condo":        TypeHouseInCondo,
	"casa uso de suelo":     TypeHouseWithLandUse,
	"casa con uso de suelo": TypeHouseWithLandUse,
	"house with land use":   TypeHouseWithLandUse,
	"otro":                  TypeOther,
	"otros":                 TypeOther,
	"other":                 TypeOther,
}

var operationTable = map[string]string{
	"venta":    OperationSale,
	"sale":     OperationSale,
	"sell":     OperationSale,
	"vendida":  OperationSale,
	"renta":    OperationRental,
	"rental":   OperationRental,
	"rent":     OperationRental,
	"alquiler": OperationRental,
	"rentada":  OperationRental,
}

// legacyTypeAliases lists the raw display variants that may still be stored
// verbatim in records written before normalization existed. The query side
// widens a canonical type filter with these so old rows keep matching.
var legacyTypeAliases = map[string][]string{
	TypeHouse:               {"Casa", "Casas"},
	TypeApartment:           {"Departamento", "Departamentos"},
	TypeLand:                {"Terreno", "Terrenos"},
	TypeLot:                 {"Lote", "Lotes"},
	TypeCommercial:          {"Local", "Local Comercial", "Locales"},
	TypeOffice:              {"Oficina", "Oficinas"},
	TypeWarehouse:           {"Bodega", "Bodegas"},
	TypeIndustrialWarehouse: {"Bodega Industrial", "Nave Industrial"},
	TypeBuilding:            {"Edificio", "Edificios"},
	TypeRanch:               {"Rancho", "Ranchos"},
	TypeDoctorOffice:        {"Consultorio", "Consultorios"},
	TypeBedroom:             {"Recámara", "Habitación"},
	TypeHouseInCondo:        {"Casa en Condominio"},
	TypeHouseWithLandUse:    {"Casa Uso de Suelo"},
}

// NormalizeType maps a raw property-type label onto its canonical key.
// Unknown labels pass through lowercased; this function never fails.
func NormalizeType(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := propertyTypeTable[key]; ok {
		return canonical
	}
	return key
}

// NormalizeOperation maps a raw operation label onto sale/rental, with
// lowercased passthrough for anything unrecognized.
func NormalizeOperation(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := operationTable[key]; ok {
		return canonical
	}
	return key
}

// ExpandTypeFilter returns the full lowercased match set for one selected
// type: the canonical key itself plus its legacy raw variants.
func ExpandTypeFilter(selected string) []string {
	canonical := NormalizeType(selected)
	values := []string{canonical}
	for _, alias := range legacyTypeAliases[canonical] {
		values = append(values, strings.ToLower(alias))
	}
	return values
}
