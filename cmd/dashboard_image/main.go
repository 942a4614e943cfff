package main

import (
	"fmt"
	"os"

	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common"
	"github.com/Freeeeeet/hotel_console/internal/model"
)

func main() {
	// Тестовые показатели
	metrics := model.Metrics{
		Occupancy:             72.5,
		UnpaidBookings:        4,
		CurrentBookings:       29,
		OpenComplaints:        3,
		FreeRooms:             9,
		RoomsUnderMaintenance: 2,
		Revenue7Days:          845300,
		RevPar:                4120.5,
		NewGuests7Days:        17,
		RevPac:                6830,
	}

	imageData, err := common.GenerateOccupancyImage(metrics)
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	filename := "dashboard.png"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	if err := os.WriteFile(filename, imageData, 0644); err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", filename)
	fmt.Printf("📊 Загрузка: %.1f%%\n", metrics.Occupancy)
}
