package seed

import (
	"tickit/internal/domain/money"
	"tickit/internal/domain/site"
)

type slotSpec struct {
	label     string
	price     string
	capacity  int
	available int
}

type siteSpec struct {
	name        string
	location    string
	description string
	category    site.Category
	price       string
	rating      float64
	imageURL    string
	features    []string
	slots       []slotSpec
}

var sampleSites = []siteSpec{
	{
		name:        "Chichen Itza",
		location:    "Yucatan, Mexico",
		description: "Ancient Mayan city featuring the iconic El Castillo pyramid and rich astronomical alignments.",
		category:    site.CategoryArchaeological,
		price:       "45.00",
		rating:      4.8,
		imageURL:    "https://images.unsplash.com/photo-1518638150340-f706e86654de?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		features:    []string{"Audio Guide Available", "Virtual Reality Experience", "Guided Tours"},
		slots: []slotSpec{
			{"9:00 AM - 11:00 AM", "45", 100, 85},
			{"11:30 AM - 1:30 PM", "45", 100, 72},
			{"2:00 PM - 4:00 PM", "45", 100, 91},
			{"4:30 PM - 6:30 PM", "50", 100, 0},
		},
	},
	{
		name:        "Petra",
		location:    "Wadi Musa, Jordan",
		description: "Rose-red city carved into sandstone cliffs, showcasing Nabataean architectural mastery.",
		category:    site.CategoryArchaeological,
		price:       "65.00",
		rating:      4.9,
		imageURL:    "https://images.unsplash.com/photo-1539650116574-75c0c6d34f51?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		features:    []string{"Night Tours", "Camel Rides", "Local Guides"},
		slots: []slotSpec{
			{"8:00 AM - 12:00 PM", "65", 150, 120},
			{"1:00 PM - 5:00 PM", "65", 150, 95},
			{"6:00 PM - 9:00 PM", "80", 75, 45},
		},
	},
	{
		name:        "Stonehenge",
		location:    "Wiltshire, England",
		description: "Prehistoric stone circle monument with mysterious origins and astronomical significance.",
		category:    site.CategoryMonument,
		price:       "35.00",
		rating:      4.7,
		imageURL:    "https://images.unsplash.com/photo-1599833975787-5e3f19d18208?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		features:    []string{"Audio Guide", "Exhibition Center", "Gift Shop"},
		slots: []slotSpec{
			{"9:30 AM - 11:00 AM", "35", 50, 28},
			{"11:30 AM - 1:00 PM", "35", 50, 15},
			{"2:00 PM - 3:30 PM", "35", 50, 42},
			{"4:00 PM - 5:30 PM", "35", 50, 33},
		},
	},
	{
		name:        "Acropolis of Athens",
		location:    "Athens, Greece",
		description: "Ancient citadel containing the remains of several historically significant buildings including the Parthenon.",
		category:    site.CategoryArchaeological,
		price:       "25.00",
		rating:      4.8,
		imageURL:    "https://images.unsplash.com/photo-1555993539-1732b0258235?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		features:    []string{"Museum Access", "Multilingual Guides", "Photography Permitted"},
		slots: []slotSpec{
			{"8:00 AM - 10:30 AM", "25", 200, 156},
			{"11:00 AM - 1:30 PM", "25", 200, 189},
			{"2:00 PM - 4:30 PM", "25", 200, 134},
			{"5:00 PM - 7:30 PM", "30", 150, 98},
		},
	},
	{
		name:        "Egyptian Museum",
		location:    "Cairo, Egypt",
		description: "World's most extensive collection of ancient Egyptian artifacts and treasures including Tutankhamun's treasures.",
		category:    site.CategoryMuseum,
		price:       "20.00",
		rating:      4.9,
		imageURL:    "https://images.unsplash.com/photo-1539874754764-5a96559165b0?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		features:    []string{"Special Exhibitions", "Photography Pass", "Expert Guides"},
		slots: []slotSpec{
			{"9:00 AM - 12:00 PM", "20", 300, 245},
			{"12:30 PM - 3:30 PM", "20", 300, 198},
			{"4:00 PM - 7:00 PM", "25", 250, 167},
		},
	},
	{
		name:        "Pompeii",
		location:    "Naples, Italy",
		description: "Preserved ancient Roman city frozen in time by volcanic ash from Mount Vesuvius in 79 AD.",
		category:    site.CategoryAncientRuins,
		price:       "18.00",
		rating:      4.8,
		imageURL:    "https://images.unsplash.com/photo-1515542622106-78bda8ba0e5b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
		features:    []string{"Archaeological Tours", "Virtual Reconstructions", "Street Art Displays"},
		slots: []slotSpec{
			{"8:30 AM - 11:30 AM", "18", 400, 312},
			{"12:00 PM - 3:00 PM", "18", 400, 289},
			{"3:30 PM - 6:30 PM", "22", 300, 201},
		},
	},
}

// Sites returns the sample catalog without ids, in insertion order. Stores assign ids 1..6.
func Sites() []*site.Site {
	out := make([]*site.Site, 0, len(sampleSites))
	for _, spec := range sampleSites {
		slots := make([]site.TimeSlot, 0, len(spec.slots))
		for _, s := range spec.slots {
			ts, err := site.NewTimeSlot(s.label, money.MustParse(s.price), s.capacity, s.available)
			if err != nil {
				panic(err)
			}
			slots = append(slots, ts)
		}
		out = append(out, site.ReconstructSite(
			0, spec.name, spec.location, spec.description, spec.category,
			money.MustParse(spec.price), spec.rating, spec.imageURL, spec.features, slots, true,
		))
	}
	return out
}
