package boot

import "fbs/src/models"

// Major international airports, seeded when the airports table is empty.
var seedAirports = []models.Airport{
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "United States", Latitude: 33.6367, Longitude: -84.4281},
	{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States", Latitude: 33.9416, Longitude: -118.4085},
	{Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "United States", Latitude: 41.9742, Longitude: -87.9073},
	{Code: "DFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", Country: "United States", Latitude: 32.8968, Longitude: -97.0380},
	{Code: "DEN", Name: "Denver International Airport", City: "Denver", Country: "United States", Latitude: 39.8561, Longitude: -104.6737},
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States", Latitude: 40.6413, Longitude: -73.7781},
	{Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "United States", Latitude: 37.7749, Longitude: -122.4194},
	{Code: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada", Latitude: 43.6777, Longitude: -79.6248},
	{Code: "YVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada", Latitude: 49.1967, Longitude: -123.1815},
	{Code: "MEX", Name: "Benito Juárez International Airport", City: "Mexico City", Country: "Mexico", Latitude: 19.4363, Longitude: -99.0721},
	{Code: "LHR", Name: "London Heathrow Airport", City: "London", Country: "United Kingdom", Latitude: 51.4700, Longitude: -0.4543},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", Latitude: 49.0097, Longitude: 2.5479},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Latitude: 50.0379, Longitude: 8.5622},
	{Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands", Latitude: 52.3105, Longitude: 4.7683},
	{Code: "MAD", Name: "Adolfo Suárez Madrid-Barajas Airport", City: "Madrid", Country: "Spain", Latitude: 40.4983, Longitude: -3.5676},
	{Code: "FCO", Name: "Leonardo da Vinci International Airport", City: "Rome", Country: "Italy", Latitude: 41.8045, Longitude: 12.2508},
	{Code: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey", Latitude: 41.2619, Longitude: 28.7419},
	{Code: "DME", Name: "Moscow Domodedovo Airport", City: "Moscow", Country: "Russia", Latitude: 55.4103, Longitude: 37.9026},
	{Code: "CPH", Name: "Copenhagen Airport", City: "Copenhagen", Country: "Denmark", Latitude: 55.6180, Longitude: 12.6508},
	{Code: "ZRH", Name: "Zurich Airport", City: "Zurich", Country: "Switzerland", Latitude: 47.4582, Longitude: 8.5555},
	{Code: "PEK", Name: "Beijing Capital International Airport", City: "Beijing", Country: "China", Latitude: 40.0799, Longitude: 116.6031},
	{Code: "HND", Name: "Tokyo Haneda Airport", City: "Tokyo", Country: "Japan", Latitude: 35.5494, Longitude: 139.7798},
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore", Latitude: 1.3644, Longitude: 103.9915},
	{Code: "ICN", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea", Latitude: 37.4602, Longitude: 126.4407},
	{Code: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand", Latitude: 13.6900, Longitude: 100.7501},
	{Code: "DEL", Name: "Indira Gandhi International Airport", City: "Delhi", Country: "India", Latitude: 28.5562, Longitude: 77.1000},
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates", Latitude: 25.2532, Longitude: 55.3657},
	{Code: "DOH", Name: "Hamad International Airport", City: "Doha", Country: "Qatar", Latitude: 25.2609, Longitude: 51.6138},
	{Code: "KUL", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "Malaysia", Latitude: 2.7456, Longitude: 101.7072},
	{Code: "CGK", Name: "Soekarno-Hatta International Airport", City: "Jakarta", Country: "Indonesia", Latitude: -6.1275, Longitude: 106.6537},
	{Code: "GRU", Name: "São Paulo/Guarulhos International Airport", City: "São Paulo", Country: "Brazil", Latitude: -23.4356, Longitude: -46.4731},
	{Code: "EZE", Name: "Ministro Pistarini International Airport", City: "Buenos Aires", Country: "Argentina", Latitude: -34.8222, Longitude: -58.5358},
	{Code: "BOG", Name: "El Dorado International Airport", City: "Bogotá", Country: "Colombia", Latitude: 4.7016, Longitude: -74.1469},
	{Code: "SCL", Name: "Arturo Merino Benítez International Airport", City: "Santiago", Country: "Chile", Latitude: -33.3928, Longitude: -70.7934},
	{Code: "LIM", Name: "Jorge Chávez International Airport", City: "Lima", Country: "Peru", Latitude: -12.0219, Longitude: -77.1143},
	{Code: "JNB", Name: "O.R. Tambo International Airport", City: "Johannesburg", Country: "South Africa", Latitude: -26.1367, Longitude: 28.2411},
	{Code: "CAI", Name: "Cairo International Airport", City: "Cairo", Country: "Egypt", Latitude: 30.1219, Longitude: 31.4056},
	{Code: "CPT", Name: "Cape Town International Airport", City: "Cape Town", Country: "South Africa", Latitude: -33.9715, Longitude: 18.6021},
	{Code: "ADD", Name: "Bole International Airport", City: "Addis Ababa", Country: "Ethiopia", Latitude: 8.9778, Longitude: 38.7989},
	{Code: "NBO", Name: "Jomo Kenyatta International Airport", City: "Nairobi", Country: "Kenya", Latitude: -1.3192, Longitude: 36.9278},
	{Code: "SYD", Name: "Sydney Airport", City: "Sydney", Country: "Australia", Latitude: -33.9399, Longitude: 151.1753},
	{Code: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia", Latitude: -37.6690, Longitude: 144.8410},
	{Code: "BNE", Name: "Brisbane Airport", City: "Brisbane", Country: "Australia", Latitude: -27.3842, Longitude: 153.1175},
	{Code: "AKL", Name: "Auckland Airport", City: "Auckland", Country: "New Zealand", Latitude: -37.0082, Longitude: 174.7850},
	{Code: "WLG", Name: "Wellington International Airport", City: "Wellington", Country: "New Zealand", Latitude: -41.3272, Longitude: 174.8051},
}
