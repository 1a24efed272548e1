// Package settingsrepo implements the settings repository over the document
// store port. The whole restaurant profile lives in one document under a
// well-known key.
package settingsrepo

import (
	"restopos/internal/core/domain/model/settings"
)

type settingsDTO struct {
	ID                  string                     `json:"_id"`
	Rev                 string                     `json:"_rev,omitempty"`
	Type                string                     `json:"type"`
	RestaurantName      string                     `json:"restaurantName"`
	Address             string                     `json:"address,omitempty"`
	Phone               string                     `json:"phone,omitempty"`
	Email               string                     `json:"email,omitempty"`
	TaxNumber           string                     `json:"taxNumber,omitempty"`
	DeliveryFee         int                        `json:"deliveryFee"`
	PackagingFee        int                        `json:"packagingFee"`
	MinOrderAmount      int                        `json:"minOrderAmount"`
	DeliveryTimeMinutes int                        `json:"deliveryTime"`
	OpeningHours        map[string]openingHoursDTO `json:"openingHours,omitempty"`
	PaymentMethods      []string                   `json:"paymentMethods,omitempty"`
	PizzaSizes          []pizzaSizeDTO             `json:"pizzaSizes,omitempty"`
	ExtraToppings       []toppingDTO               `json:"extraToppings,omitempty"`
}

type openingHoursDTO struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type pizzaSizeDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	PriceMultiplier float64 `json:"priceMultiplier"`
}

type toppingDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

func fromDomain(s *settings.Settings) settingsDTO {
	dto := settingsDTO{
		ID:                  settings.DocumentKey,
		Rev:                 s.Rev,
		Type:                "settings",
		RestaurantName:      s.RestaurantName,
		Address:             s.Address,
		Phone:               s.Phone,
		Email:               s.Email,
		TaxNumber:           s.TaxNumber,
		DeliveryFee:         s.DeliveryFee,
		PackagingFee:        s.PackagingFee,
		MinOrderAmount:      s.MinOrderAmount,
		DeliveryTimeMinutes: s.DeliveryTimeMinutes,
		PaymentMethods:      s.PaymentMethods,
	}

	if len(s.OpeningHours) > 0 {
		dto.OpeningHours = make(map[string]openingHoursDTO, len(s.OpeningHours))
		for day, hours := range s.OpeningHours {
			dto.OpeningHours[day] = openingHoursDTO(hours)
		}
	}
	for _, size := range s.PizzaSizes {
		dto.PizzaSizes = append(dto.PizzaSizes, pizzaSizeDTO(size))
	}
	for _, topping := range s.ExtraToppings {
		dto.ExtraToppings = append(dto.ExtraToppings, toppingDTO(topping))
	}
	return dto
}

func toDomain(dto settingsDTO) *settings.Settings {
	s := &settings.Settings{
		Rev:                 dto.Rev,
		RestaurantName:      dto.RestaurantName,
		Address:             dto.Address,
		Phone:               dto.Phone,
		Email:               dto.Email,
		TaxNumber:           dto.TaxNumber,
		DeliveryFee:         dto.DeliveryFee,
		PackagingFee:        dto.PackagingFee,
		MinOrderAmount:      dto.MinOrderAmount,
		DeliveryTimeMinutes: dto.DeliveryTimeMinutes,
		PaymentMethods:      dto.PaymentMethods,
	}

	if len(dto.OpeningHours) > 0 {
		s.OpeningHours = make(map[string]settings.OpeningHours, len(dto.OpeningHours))
		for day, hours := range dto.OpeningHours {
			s.OpeningHours[day] = settings.OpeningHours(hours)
		}
	}
	for _, size := range dto.PizzaSizes {
		s.PizzaSizes = append(s.PizzaSizes, settings.PizzaSize(size))
	}
	for _, topping := range dto.ExtraToppings {
		s.ExtraToppings = append(s.ExtraToppings, settings.Topping(topping))
	}
	return s
}
