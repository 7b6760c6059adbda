package whitelist

// names lists font families whose embedding into output documents is
// permitted by the type foundry's license, irrespective of the embedding
// flags a font carries. Names are stored without trademark signs.
var names = [...]string{
	"Aachen",
	"Adobe Arabic",
	"Adobe Caslon",
	"Adobe Devanagari",
	"Adobe Fangsong",
	"Adobe FanHeiti",
	"Adobe Garamond",
	"Adobe Gothic",
	"Adobe Hebrew",
	"Adobe Heiti",
	"Adobe Jenson",
	"Adobe Kaiti",
	"Adobe Ming",
	"Adobe Myungjo",
	"Adobe Naskh",
	"Adobe Song",
	"Adobe Text",
	"Adobe Thai",
	"Adobe Wood Type",
	"Albertus",
	"Aldus",
	"Alexa",
	"Americana",
	"Amigo",
	"Andreas",
	"Antique Olive",
	"Apollo",
	"Arcadia",
	"Arcana",
	"Ariadne",
	"Arno",
	"Arnold Boecklin",
	"Ashley Script",
	"Astrology Pi",
	"Audio Pi",
	"Auriol",
	"Avenir",
	"Baker Signet",
	"Balzano",
	"Banco",
	"Banshee",
	"Baskerville Cyrillic",
	"Bauer Bodoni",
	"Bell",
	"Bell Centennial",
	"Bell Gothic",
	"Belwe",
	"Bembo",
	"Berling",
	"Bermuda",
	"Bernhard",
	"Bernhard Modern",
	"Bickham Script",
	"Biffo",
	"Birch",
	"Blackoak",
	"Blue Island",
	"Bodoni",
	"Border Pi",
	"Briem Akademi",
	"Briem Script",
	"Brioso",
	"Bruno",
	"Brush Script",
	"Bulmer",
	"Bundesbahn Pi",
	"Caflisch Script",
	"Calcite",
	"Caliban",
	"Calvert",
	"Candida",
	"Cantoria",
	"Caravan Borders",
	"Carolina",
	"Carta",
	"Cascade Script",
	"Caslon 3",
	"Caslon 540",
	"Caslon Open Face",
	"Castellar",
	"Caxton",
	"Centaur",
	"Century Expanded",
	"Century Old Style",
	"Chaparral",
	"Charlemagne",
	"Charme",
	"Cheq",
	"Clairvaux",
	"Clarendon",
	"Clearface Gothic",
	"Cloister",
	"Club Type",
	"Cochin",
	"Conga Brava",
	"Conga Brava Stencil",
	"Cooper Black",
	"Copal",
	"Copperplate Gothic",
	"Coriander",
	"Corona",
	"Coronet",
	"Cottonwood",
	"Courier",
	"Critter",
	"Cronos",
	"Cutout",
	"Dante",
	"Decoration Pi",
	"Delphin",
	"DIN Schriften",
	"Diotima",
	"Diskus",
	"Dom Casual",
	"Dorchester Script",
	"Doric",
	"Duc de Berry",
	"Eccentric",
	"Egyptienne F",
	"Ehrhardt",
	"Electra",
	"Ellington",
	"Else NPL",
	"Engravers",
	"European Pi",
	"Eurostile",
	"Ex Ponto",
	"Excelsior",
	"Fairfield",
	"Falstaff",
	"Fette Fraktur",
	"Flood",
	"Florens",
	"Flyer",
	"Folio",
	"Forte",
	"Fournier",
	"Franklin Gothic",
	"Freestyle Script",
	"Friz Quadrata",
	"Frutiger",
	"Fusaka",
	"Futura",
	"Galahad",
	"Game Pi",
	"Garamond 3",
	"Garamond Premier",
	"Garth Graphic",
	"Gazette",
	"Giddyup",
	"Gill Floriated Capitals",
	"Gill Sans",
	"Glypha",
	"Gothic 13",
	"Goudy",
	"Goudy Text",
	"Granjon",
	"Graphite",
	"Guardi",
	"Hadriano",
	"Hardwood",
	"Heisei Kaku Gothic",
	"Heisei Maru Gothic",
	"Heisei Mincho",
	"Helvetica",
	"Helvetica Inserat",
	"Helvetica Neue",
	"Helvetica Rounded",
	"Herculanum",
	"Hiroshige",
	"Hobo",
	"Holiday Pi",
	"Horley Old Style",
	"HY GungSo",
	"HY Kak Headline",
	"HY Rounded Gothic",
	"Hypatia Sans",
	"Immi 505",
	"Impact",
	"Impressum",
	"Industria",
	"Inflex",
	"Insignia",
	"Ironwood",
	"Isabella",
	"Italia",
	"ITC American Typewriter",
	"ITC Anna",
	"ITC Avant Garde Gothic",
	"ITC Bauhaus",
	"ITC Beesknees",
	"ITC Benguiat",
	"ITC Benguiat Gothic",
	"ITC Berkeley Oldstyle",
	"ITC Bookman",
	"ITC Caslon 224",
	"ITC Century",
	"ITC Century Handtooled",
	"ITC Cerigo",
	"ITC Cheltenham",
	"ITC Cheltenham Handtooled",
	"ITC Clearface",
	"ITC Cushing",
	"ITC Eras",
	"ITC Esprit",
	"ITC Fenice",
	"ITC Flora",
	"ITC Franklin Gothic",
	"ITC Galliard",
	"ITC Garamond",
	"ITC Garamond Handtooled",
	"ITC Giovanni",
	"ITC Goudy Sans",
	"ITC Highlander",
	"ITC Isadora",
	"ITC Kabel",
	"ITC Korinna",
	"ITC Leawood",
	"ITC Legacy Sans",
	"ITC Legacy Serif",
	"ITC Lubalin Graph",
	"ITC Machine",
	"ITC Mendoza Roman",
	"ITC Mona Lisa",
	"ITC Motter Corpus",
	"ITC New Baskerville",
	"ITC Novarese",
	"ITC Officina Sans",
	"ITC Officina Serif",
	"ITC Ozwald",
	"ITC Quorum",
	"ITC Serif Gothic",
	"ITC Slimbach",
	"ITC Souvenir",
	"ITC Stone Informal",
	"ITC Stone Sans",
	"ITC Stone Serif",
	"ITC Symbol",
	"ITC Tiepolo",
	"ITC Tiffany",
	"ITC Usherwood",
	"ITC Veljovic",
	"ITC Weidemann",
	"ITC Zapf Chancery",
	"ITC Zapf Dingbats",
	"Janson Text",
	"Jimbo",
	"Joanna",
	"Juniper",
	"Kabel",
	"Kaufmann",
	"Kazuraki SP2N",
	"Kepler",
	"Khaki",
	"Kigali",
	"Kinesis",
	"Kino",
	"Klang",
	"Koch Antiqua",
	"Kolo",
	"Kompakt",
	"Kozuka Gothic",
	"Kozuka Mincho",
	"Kunstler Script",
	"Latin",
	"Leander Script ",
	"Legault",
	"Letter Gothic",
	"Life",
	"LinoLetter",
	"Linoscript",
	"Linotext",
	"Linotype Centennial",
	"Linotype Didot",
	"Lithos",
	"LogoArl",
	"LogoCut",
	"LogoLine",
	"Lucida",
	"Lucida Math",
	"Lucida Sans",
	"Lucida Sans Typewriter",
	"Lucida Typewriter",
	"Madrone",
	"Manito",
	"Marigold",
	"Mathematical Pi",
	"Matura",
	"Maximus",
	"Medici Script",
	"Melior",
	"Memphis",
	"Mercurius",
	"Meridien",
	"Mesquite",
	"Mezz",
	"MICR",
	"Minion",
	"Minister",
	"Mistral",
	"Mojo",
	"Monoline Script",
	"Monotype Goudy Modern",
	"Monotype Grotesque",
	"Monotype Italian Old Style",
	"Monotype Modern",
	"Monotype Old Style",
	"Monotype Scotch Roman",
	"Monotype Script",
	"Montara",
	"Moonglow",
	"MVB Bossa Nova",
	"MVB Celestia Antiqua",
	"MVB Emmascript",
	"MVB Greymantle",
	"MVB Magnesium",
	"MVB Magnolia",
	"Myriad",
	"Myriad Arabic",
	"Myriad Hebrew",
	"Myriad Hebrew Cursive",
	"Mythos",
	"National Codes Pi",
	"Neue Hammer Unziale",
	"Neuland",
	"Neuzeit S",
	"New Aster",
	"New Berolina",
	"New Caledonia",
	"New Century Schoolbook",
	"News Gothic",
	"Notre Dame",
	"Nueva",
	"Nuptial Script",
	"Nyx",
	"Ocean Sans",
	"OCR-A",
	"OCR-B",
	"Octavian",
	"Old Claude",
	"Old Style 7",
	"Olympian",
	"Omnia",
	"Ondine",
	"Onyx",
	"Optima",
	"Orator",
	"Organica GMM",
	"Origami",
	"Ouch!",
	"Oxford",
	"Palace Script",
	"Palatino",
	"Parisian",
	"Park Avenue",
	"Peignot",
	"Pelican",
	"Penumbra Flare",
	"Penumbra Half Serif",
	"Penumbra Sans",
	"Penumbra Serif",
	"Pepita",
	"Pepperwood",
	"Perpetua",
	"Photina",
	"Plantin",
	"PMN Caecilia",
	"Poetica",
	"Pompeia",
	"Pompeijana",
	"Ponderosa",
	"Poplar",
	"Postino",
	"Present",
	"Prestige Elite",
	"Quake",
	"Rad",
	"Raleigh",
	"Raphael",
	"Reliq",
	"Reporter",
	"Revue",
	"Rockwell",
	"Romic",
	"Rosewood",
	"Rotation",
	"Rotis Sans Serif",
	"Rotis Semi Sans",
	"Rotis Semi Serif",
	"Rotis Serif",
	"Ruling Script",
	"Runic",
	"Russell Oblique",
	"Russell Square",
	"Rusticana",
	"Ruzicka Freehand",
	"Ryo Display PlusN",
	"Ryo Gothic PlusN",
	"Ryo Text PlusN",
	"Sabon",
	"San Marco",
	"Sanvito",
	"Sassafras",
	"Sava",
	"Serifa",
	"Serlio",
	"Serpentine",
	"Shannon",
	"Shelley",
	"Sho",
	"Shuriken Boy",
	"Silentium",
	"Simoncini Garamond",
	"Smaragd",
	"SMGothic",
	"SMMyungjo",
	"Snell Roundhand",
	"Sonata",
	"Source Sans",
	"Spartan",
	"Spectrum",
	"Spring",
	"Spumoni",
	"Stempel Garamond",
	"Stempel Schneidler",
	"Stencil",
	"Strayhorn",
	"Strumpf",
	"Studz",
	"Symbol",
	"Syntax",
	"Tekton",
	"Tempo",
	"Times",
	"Times Europa",
	"Times New Roman",
	"Times Ten",
	"Toolbox",
	"Trade Gothic",
	"Trajan",
	"Trajan Sans",
	"Trump Medieval",
	"Umbra",
	"Univers",
	"Universal",
	"University",
	"Utopia",
	"VAG Rounded",
	"Vectora",
	"Versailles",
	"Verve",
	"Visigoth",
	"Viva",
	"Voluta Script",
	"Warning Pi",
	"Warnock",
	"Waters Titling",
	"Weiss",
	"Wendy",
	"Wiesbaden Swing",
	"Wilhelm Klingspor Gotisch",
	"Wilke",
	"Willow",
	"Wittenberger Fraktur",
	"Zebrawood",
	"Zipty Do",
}
