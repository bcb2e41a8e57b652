package scenario

// GalleryItem is one photo in the unlocked gallery.
type GalleryItem struct {
	Title       string
	Description string
	ListItems   []string
}

// GalleryItems are the unlocked gallery contents. Their descriptions carry
// the clue chain: the restricted site's default password hint and the chute
// override sequence.
var GalleryItems = []GalleryItem{
	{
		Title: "Image 1: Skull Network Diagram",
		Description: "A crudely drawn network diagram. Several nodes are labelled with cryptic codenames " +
			"('Hydra', 'Cerberus', 'Styx'). One central node is larger, labelled 'SKULLS.SYSTEM', with lines " +
			"connecting to all others. Next to SKULLS.SYSTEM, a small, almost illegible note says: " +
			"'Default Pass: Primary Asset Codename'.",
	},
	{
		Title:       "Image 2: Subject Log - Excerpt",
		Description: "A photo of a printed page. It appears to be a list:",
		ListItems: []string{
			"Subject #32 - Status: Processed (Reloc. Gamma)",
			"Subject #33 - Status: Pending Assessment (Reloc. Delta)",
			"Subject #34 - Status: Acquisition Confirmed (Asset Codename: " + NetworkPassword + ")",
		},
	},
	{
		Title: "Image 3: Cell Block C - Emergency Layout",
		Description: "A very basic floor plan sketch, labelled \"Cell Block C\". It shows a few cells, one " +
			"marked \"#34\". An arrow points from cell #34 to a spot labelled \"Waste Disposal Chute - " +
			"Manual Override: Keypad Sequence " + ChuteKeypadSequence + "\".",
	},
}
