package repository

import "building-service/internal/models"

// SeedBuildings returns the example records the directory starts with.
func SeedBuildings() []models.Building {
	return []models.Building{
		{
			ID:             1,
			Name:           "Keangnam",
			Address:        "Nam Từ Liêm - Hà Nội",
			Representative: "Nguyễn Văn Tuấn",
			Phone:          "0901234567",
			CCCD:           "012345678901",
			CCCDDate:       "01-01-2024",
			Lat:            models.Coordinate(21.017415),
			Lng:            models.Coordinate(105.782735),
		},
		{
			ID:             2,
			Name:           "Tòa nhà Lim Tower",
			Address:        "Ba Đình - Hà Nội",
			Representative: "Hoàng Thị Bình",
			Phone:          "0912345678",
			CCCD:           "123456789012",
			CCCDDate:       "15-09-2023",
			Lat:            models.Coordinate(21.033333),
			Lng:            models.Coordinate(105.814167),
		},
		{
			ID:             3,
			Name:           "Tòa nhà VinKe",
			Address:        "Hai Bà Trưng - Hà Nội",
			Representative: "Hoàng Văn Trung",
			Phone:          "0912345678",
			CCCD:           "123456789012",
			CCCDDate:       "19-09-2024",
			Lat:            models.Coordinate(20.996746996400226),
			Lng:            models.Coordinate(105.86845314384604),
		},
		{
			ID:             4,
			Name:           "Tòa nhà VinCom",
			Address:        "Hai Bà Trưng - Hà Nội",
			Representative: "Trần Thị Dung",
			Phone:          "0912345678",
			CCCD:           "123456789012",
			CCCDDate:       "09-04-2019",
			Lat:            models.Coordinate(21.011278481327835),
			Lng:            models.Coordinate(105.85087150632741),
		},
		{
			ID:             5,
			Name:           "Tòa nhà Lim Tower 3",
			Address:        "Ba Đình - Hà Nội",
			Representative: "Lê Thị Chi",
			Phone:          "0912345678",
			CCCD:           "123456789012",
			CCCDDate:       "19-03-2025",
			Lat:            models.Coordinate(21.0346),
			Lng:            models.Coordinate(105.7152),
		},
		{
			ID:             6,
			Name:           "Tòa nhà Lim Tower 4",
			Address:        "Ba Đình - Hà Nội",
			Representative: "Nguyễn Thị Giang ",
			Phone:          "0912345678",
			CCCD:           "123456789012",
			CCCDDate:       "01-09-2024",
			Lat:            models.Coordinate(21.11338),
			Lng:            models.Coordinate(105.816),
		},
	}
}
