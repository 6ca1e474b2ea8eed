package cutter

// table holds the author-number entries per surname initial, ascending by
// prefix. Lookups take the greatest prefix not exceeding the surname.
//
// The codes are placeholders spread over 11..99 so that shelf order follows
// alphabetical order. They are not the published Cutter-Sanborn numbers and
// must not be presented as authoritative.
var table = map[byte][]entry{
	'A': {
		{"AB", 11}, {"AC", 13}, {"AD", 15}, {"AF", 17}, {"AG", 19}, {"AH", 21},
		{"AI", 22}, {"AIL", 24}, {"AIN", 26}, {"AIR", 28}, {"AIS", 30}, {"AJ", 32},
		{"AK", 34}, {"AL", 36}, {"ALA", 38}, {"ALE", 40}, {"ALI", 42}, {"ALO", 44},
		{"AM", 45}, {"AN", 47}, {"ANA", 49}, {"ANE", 51}, {"ANI", 53}, {"ANO", 55},
		{"AP", 57}, {"AQ", 59}, {"AR", 61}, {"ARA", 63}, {"ARE", 65}, {"ARI", 66},
		{"ARO", 68}, {"AS", 70}, {"ASA", 72}, {"ASE", 74}, {"ASI", 76},
		{"ASO", 78}, {"AT", 80}, {"AU", 82}, {"AUL", 84}, {"AUN", 86}, {"AUR", 88},
		{"AUS", 89}, {"AV", 91}, {"AW", 93}, {"AX", 95}, {"AY", 97}, {"AZ", 99},
	},
	'B': {
		{"BA", 11}, {"BAL", 14}, {"BAN", 17}, {"BAR", 20}, {"BAS", 24}, {"BE", 27},
		{"BEL", 30}, {"BEN", 33}, {"BER", 36}, {"BES", 39}, {"BH", 42}, {"BI", 46},
		{"BIL", 49}, {"BIN", 52}, {"BIR", 55}, {"BIS", 58}, {"BL", 61}, {"BO", 64},
		{"BOL", 68}, {"BON", 71}, {"BOR", 74}, {"BOS", 77}, {"BR", 80}, {"BU", 83},
		{"BUL", 86}, {"BUN", 90}, {"BUR", 93}, {"BUS", 96}, {"BY", 99},
	},
	'C': {
		{"CA", 11}, {"CAL", 14}, {"CAN", 17}, {"CAR", 20}, {"CAS", 24}, {"CE", 27},
		{"CEL", 30}, {"CEN", 33}, {"CER", 36}, {"CES", 39}, {"CH", 42}, {"CI", 46},
		{"CIL", 49}, {"CIN", 52}, {"CIR", 55}, {"CIS", 58}, {"CL", 61}, {"CO", 64},
		{"COL", 68}, {"CON", 71}, {"COR", 74}, {"COS", 77}, {"CR", 80}, {"CU", 83},
		{"CUL", 86}, {"CUN", 90}, {"CUR", 93}, {"CUS", 96}, {"CY", 99},
	},
	'D': {
		{"DA", 11}, {"DAL", 14}, {"DAN", 17}, {"DAR", 20}, {"DAS", 24}, {"DE", 27},
		{"DEL", 30}, {"DEN", 33}, {"DER", 36}, {"DES", 39}, {"DH", 42}, {"DI", 46},
		{"DIL", 49}, {"DIN", 52}, {"DIR", 55}, {"DIS", 58}, {"DL", 61}, {"DO", 64},
		{"DOL", 68}, {"DON", 71}, {"DOR", 74}, {"DOS", 77}, {"DR", 80}, {"DU", 83},
		{"DUL", 86}, {"DUN", 90}, {"DUR", 93}, {"DUS", 96}, {"DY", 99},
	},
	'E': {
		{"EA", 11}, {"EAL", 12}, {"EAN", 14}, {"EAR", 15}, {"EAS", 17}, {"EB", 18},
		{"EC", 20}, {"ED", 21}, {"EE", 23}, {"EEL", 24}, {"EEN", 25}, {"EER", 27},
		{"EES", 28}, {"EF", 30}, {"EG", 31}, {"EH", 33}, {"EI", 34}, {"EIL", 36},
		{"EIN", 37}, {"EIR", 38}, {"EIS", 40}, {"EJ", 41}, {"EK", 43}, {"EL", 44},
		{"ELA", 46}, {"ELE", 47}, {"ELI", 49}, {"ELO", 50}, {"EM", 51}, {"EN", 53},
		{"ENA", 54}, {"ENE", 56}, {"ENI", 57}, {"ENO", 59}, {"EO", 60},
		{"EOL", 61}, {"EON", 63}, {"EOR", 64}, {"EOS", 66}, {"EP", 67}, {"EQ", 69},
		{"ER", 70}, {"ERA", 72}, {"ERE", 73}, {"ERI", 74}, {"ERO", 76}, {"ES", 77},
		{"ESA", 79}, {"ESE", 80}, {"ESI", 82}, {"ESO", 83}, {"ET", 85}, {"EU", 86},
		{"EUL", 87}, {"EUN", 89}, {"EUR", 90}, {"EUS", 92}, {"EV", 93}, {"EW", 95},
		{"EX", 96}, {"EY", 98}, {"EZ", 99},
	},
	'F': {
		{"FA", 11}, {"FAL", 14}, {"FAN", 17}, {"FAR", 20}, {"FAS", 24}, {"FE", 27},
		{"FEL", 30}, {"FEN", 33}, {"FER", 36}, {"FES", 39}, {"FH", 42}, {"FI", 46},
		{"FIL", 49}, {"FIN", 52}, {"FIR", 55}, {"FIS", 58}, {"FL", 61}, {"FO", 64},
		{"FOL", 68}, {"FON", 71}, {"FOR", 74}, {"FOS", 77}, {"FR", 80}, {"FU", 83},
		{"FUL", 86}, {"FUN", 90}, {"FUR", 93}, {"FUS", 96}, {"FY", 99},
	},
	'G': {
		{"GA", 11}, {"GAL", 14}, {"GAN", 17}, {"GAR", 20}, {"GAS", 24}, {"GE", 27},
		{"GEL", 30}, {"GEN", 33}, {"GER", 36}, {"GES", 39}, {"GH", 42}, {"GI", 46},
		{"GIL", 49}, {"GIN", 52}, {"GIR", 55}, {"GIS", 58}, {"GL", 61}, {"GO", 64},
		{"GOL", 68}, {"GON", 71}, {"GOR", 74}, {"GOS", 77}, {"GR", 80}, {"GU", 83},
		{"GUL", 86}, {"GUN", 90}, {"GUR", 93}, {"GUS", 96}, {"GY", 99},
	},
	'H': {
		{"HA", 11}, {"HAL", 14}, {"HAN", 17}, {"HAR", 20}, {"HAS", 24}, {"HE", 27},
		{"HEL", 30}, {"HEN", 33}, {"HER", 36}, {"HES", 39}, {"HH", 42}, {"HI", 46},
		{"HIL", 49}, {"HIN", 52}, {"HIR", 55}, {"HIS", 58}, {"HL", 61}, {"HO", 64},
		{"HOL", 68}, {"HON", 71}, {"HOR", 74}, {"HOS", 77}, {"HR", 80}, {"HU", 83},
		{"HUL", 86}, {"HUN", 90}, {"HUR", 93}, {"HUS", 96}, {"HY", 99},
	},
	'I': {
		{"IB", 11}, {"IC", 13}, {"ID", 15}, {"IF", 17}, {"IG", 19}, {"IH", 21},
		{"II", 22}, {"IIL", 24}, {"IIN", 26}, {"IIR", 28}, {"IIS", 30}, {"IJ", 32},
		{"IK", 34}, {"IL", 36}, {"ILA", 38}, {"ILE", 40}, {"ILI", 42}, {"ILO", 44},
		{"IM", 45}, {"IN", 47}, {"INA", 49}, {"INE", 51}, {"INI", 53}, {"INO", 55},
		{"IP", 57}, {"IQ", 59}, {"IR", 61}, {"IRA", 63}, {"IRE", 65}, {"IRI", 66},
		{"IRO", 68}, {"IS", 70}, {"ISA", 72}, {"ISE", 74}, {"ISI", 76},
		{"ISO", 78}, {"IT", 80}, {"IU", 82}, {"IUL", 84}, {"IUN", 86}, {"IUR", 88},
		{"IUS", 89}, {"IV", 91}, {"IW", 93}, {"IX", 95}, {"IY", 97}, {"IZ", 99},
	},
	'J': {
		{"JA", 11}, {"JAL", 14}, {"JAN", 17}, {"JAR", 20}, {"JAS", 24}, {"JE", 27},
		{"JEL", 30}, {"JEN", 33}, {"JER", 36}, {"JES", 39}, {"JH", 42}, {"JI", 46},
		{"JIL", 49}, {"JIN", 52}, {"JIR", 55}, {"JIS", 58}, {"JL", 61}, {"JO", 64},
		{"JOL", 68}, {"JON", 71}, {"JOR", 74}, {"JOS", 77}, {"JR", 80}, {"JU", 83},
		{"JUL", 86}, {"JUN", 90}, {"JUR", 93}, {"JUS", 96}, {"JY", 99},
	},
	'K': {
		{"KA", 11}, {"KAL", 14}, {"KAN", 17}, {"KAR", 20}, {"KAS", 24}, {"KE", 27},
		{"KEL", 30}, {"KEN", 33}, {"KER", 36}, {"KES", 39}, {"KH", 42}, {"KI", 46},
		{"KIL", 49}, {"KIN", 52}, {"KIR", 55}, {"KIS", 58}, {"KL", 61}, {"KO", 64},
		{"KOL", 68}, {"KON", 71}, {"KOR", 74}, {"KOS", 77}, {"KR", 80}, {"KU", 83},
		{"KUL", 86}, {"KUN", 90}, {"KUR", 93}, {"KUS", 96}, {"KY", 99},
	},
	'L': {
		{"LA", 11}, {"LAL", 14}, {"LAN", 17}, {"LAR", 20}, {"LAS", 24}, {"LE", 27},
		{"LEL", 30}, {"LEN", 33}, {"LER", 36}, {"LES", 39}, {"LH", 42}, {"LI", 46},
		{"LIL", 49}, {"LIN", 52}, {"LIR", 55}, {"LIS", 58}, {"LL", 61}, {"LO", 64},
		{"LOL", 68}, {"LON", 71}, {"LOR", 74}, {"LOS", 77}, {"LR", 80}, {"LU", 83},
		{"LUL", 86}, {"LUN", 90}, {"LUR", 93}, {"LUS", 96}, {"LY", 99},
	},
	'M': {
		{"MA", 11}, {"MAL", 14}, {"MAN", 17}, {"MAR", 20}, {"MAS", 24}, {"ME", 27},
		{"MEL", 30}, {"MEN", 33}, {"MER", 36}, {"MES", 39}, {"MH", 42}, {"MI", 46},
		{"MIL", 49}, {"MIN", 52}, {"MIR", 55}, {"MIS", 58}, {"ML", 61}, {"MO", 64},
		{"MOL", 68}, {"MON", 71}, {"MOR", 74}, {"MOS", 77}, {"MR", 80}, {"MU", 83},
		{"MUL", 86}, {"MUN", 90}, {"MUR", 93}, {"MUS", 96}, {"MY", 99},
	},
	'N': {
		{"NA", 11}, {"NAL", 14}, {"NAN", 17}, {"NAR", 20}, {"NAS", 24}, {"NE", 27},
		{"NEL", 30}, {"NEN", 33}, {"NER", 36}, {"NES", 39}, {"NH", 42}, {"NI", 46},
		{"NIL", 49}, {"NIN", 52}, {"NIR", 55}, {"NIS", 58}, {"NL", 61}, {"NO", 64},
		{"NOL", 68}, {"NON", 71}, {"NOR", 74}, {"NOS", 77}, {"NR", 80}, {"NU", 83},
		{"NUL", 86}, {"NUN", 90}, {"NUR", 93}, {"NUS", 96}, {"NY", 99},
	},
	'O': {
		{"OB", 11}, {"OC", 13}, {"OD", 15}, {"OF", 17}, {"OG", 19}, {"OH", 21},
		{"OI", 22}, {"OIL", 24}, {"OIN", 26}, {"OIR", 28}, {"OIS", 30}, {"OJ", 32},
		{"OK", 34}, {"OL", 36}, {"OLA", 38}, {"OLE", 40}, {"OLI", 42}, {"OLO", 44},
		{"OM", 45}, {"ON", 47}, {"ONA", 49}, {"ONE", 51}, {"ONI", 53}, {"ONO", 55},
		{"OP", 57}, {"OQ", 59}, {"OR", 61}, {"ORA", 63}, {"ORE", 65}, {"ORI", 66},
		{"ORO", 68}, {"OS", 70}, {"OSA", 72}, {"OSE", 74}, {"OSI", 76},
		{"OSO", 78}, {"OT", 80}, {"OU", 82}, {"OUL", 84}, {"OUN", 86}, {"OUR", 88},
		{"OUS", 89}, {"OV", 91}, {"OW", 93}, {"OX", 95}, {"OY", 97}, {"OZ", 99},
	},
	'P': {
		{"PA", 11}, {"PAL", 14}, {"PAN", 17}, {"PAR", 20}, {"PAS", 24}, {"PE", 27},
		{"PEL", 30}, {"PEN", 33}, {"PER", 36}, {"PES", 39}, {"PH", 42}, {"PI", 46},
		{"PIL", 49}, {"PIN", 52}, {"PIR", 55}, {"PIS", 58}, {"PL", 61}, {"PO", 64},
		{"POL", 68}, {"PON", 71}, {"POR", 74}, {"POS", 77}, {"PR", 80}, {"PU", 83},
		{"PUL", 86}, {"PUN", 90}, {"PUR", 93}, {"PUS", 96}, {"PY", 99},
	},
	'Q': {
		{"QU", 11}, {"QUL", 33}, {"QUN", 55}, {"QUR", 77}, {"QUS", 99},
	},
	'R': {
		{"RA", 11}, {"RAL", 14}, {"RAN", 17}, {"RAR", 20}, {"RAS", 24}, {"RE", 27},
		{"REL", 30}, {"REN", 33}, {"RER", 36}, {"RES", 39}, {"RH", 42}, {"RI", 46},
		{"RIL", 49}, {"RIN", 52}, {"RIR", 55}, {"RIS", 58}, {"RL", 61}, {"RO", 64},
		{"ROL", 68}, {"RON", 71}, {"ROR", 74}, {"ROS", 77}, {"RR", 80}, {"RU", 83},
		{"RUL", 86}, {"RUN", 90}, {"RUR", 93}, {"RUS", 96}, {"RY", 99},
	},
	'S': {
		{"SA", 11}, {"SAL", 14}, {"SAN", 17}, {"SAR", 20}, {"SAS", 24}, {"SE", 27},
		{"SEL", 30}, {"SEN", 33}, {"SER", 36}, {"SES", 39}, {"SH", 42}, {"SI", 46},
		{"SIL", 49}, {"SIN", 52}, {"SIR", 55}, {"SIS", 58}, {"SL", 61}, {"SO", 64},
		{"SOL", 68}, {"SON", 71}, {"SOR", 74}, {"SOS", 77}, {"SR", 80}, {"SU", 83},
		{"SUL", 86}, {"SUN", 90}, {"SUR", 93}, {"SUS", 96}, {"SY", 99},
	},
	'T': {
		{"TA", 11}, {"TAL", 14}, {"TAN", 17}, {"TAR", 20}, {"TAS", 24}, {"TE", 27},
		{"TEL", 30}, {"TEN", 33}, {"TER", 36}, {"TES", 39}, {"TH", 42}, {"TI", 46},
		{"TIL", 49}, {"TIN", 52}, {"TIR", 55}, {"TIS", 58}, {"TL", 61}, {"TO", 64},
		{"TOL", 68}, {"TON", 71}, {"TOR", 74}, {"TOS", 77}, {"TR", 80}, {"TU", 83},
		{"TUL", 86}, {"TUN", 90}, {"TUR", 93}, {"TUS", 96}, {"TY", 99},
	},
	'U': {
		{"UB", 11}, {"UC", 13}, {"UD", 15}, {"UF", 17}, {"UG", 19}, {"UH", 21},
		{"UI", 22}, {"UIL", 24}, {"UIN", 26}, {"UIR", 28}, {"UIS", 30}, {"UJ", 32},
		{"UK", 34}, {"UL", 36}, {"ULA", 38}, {"ULE", 40}, {"ULI", 42}, {"ULO", 44},
		{"UM", 45}, {"UN", 47}, {"UNA", 49}, {"UNE", 51}, {"UNI", 53}, {"UNO", 55},
		{"UP", 57}, {"UQ", 59}, {"UR", 61}, {"URA", 63}, {"URE", 65}, {"URI", 66},
		{"URO", 68}, {"US", 70}, {"USA", 72}, {"USE", 74}, {"USI", 76},
		{"USO", 78}, {"UT", 80}, {"UU", 82}, {"UUL", 84}, {"UUN", 86}, {"UUR", 88},
		{"UUS", 89}, {"UV", 91}, {"UW", 93}, {"UX", 95}, {"UY", 97}, {"UZ", 99},
	},
	'V': {
		{"VA", 11}, {"VAL", 14}, {"VAN", 17}, {"VAR", 20}, {"VAS", 24}, {"VE", 27},
		{"VEL", 30}, {"VEN", 33}, {"VER", 36}, {"VES", 39}, {"VH", 42}, {"VI", 46},
		{"VIL", 49}, {"VIN", 52}, {"VIR", 55}, {"VIS", 58}, {"VL", 61}, {"VO", 64},
		{"VOL", 68}, {"VON", 71}, {"VOR", 74}, {"VOS", 77}, {"VR", 80}, {"VU", 83},
		{"VUL", 86}, {"VUN", 90}, {"VUR", 93}, {"VUS", 96}, {"VY", 99},
	},
	'W': {
		{"WA", 11}, {"WAL", 14}, {"WAN", 17}, {"WAR", 20}, {"WAS", 24}, {"WE", 27},
		{"WEL", 30}, {"WEN", 33}, {"WER", 36}, {"WES", 39}, {"WH", 42}, {"WI", 46},
		{"WIL", 49}, {"WIN", 52}, {"WIR", 55}, {"WIS", 58}, {"WL", 61}, {"WO", 64},
		{"WOL", 68}, {"WON", 71}, {"WOR", 74}, {"WOS", 77}, {"WR", 80}, {"WU", 83},
		{"WUL", 86}, {"WUN", 90}, {"WUR", 93}, {"WUS", 96}, {"WY", 99},
	},
	'X': {
		{"XA", 11}, {"XAL", 14}, {"XAN", 17}, {"XAR", 20}, {"XAS", 24}, {"XE", 27},
		{"XEL", 30}, {"XEN", 33}, {"XER", 36}, {"XES", 39}, {"XH", 42}, {"XI", 46},
		{"XIL", 49}, {"XIN", 52}, {"XIR", 55}, {"XIS", 58}, {"XL", 61}, {"XO", 64},
		{"XOL", 68}, {"XON", 71}, {"XOR", 74}, {"XOS", 77}, {"XR", 80}, {"XU", 83},
		{"XUL", 86}, {"XUN", 90}, {"XUR", 93}, {"XUS", 96}, {"XY", 99},
	},
	'Y': {
		{"YA", 11}, {"YAL", 14}, {"YAN", 17}, {"YAR", 20}, {"YAS", 24}, {"YE", 27},
		{"YEL", 30}, {"YEN", 33}, {"YER", 36}, {"YES", 39}, {"YH", 42}, {"YI", 46},
		{"YIL", 49}, {"YIN", 52}, {"YIR", 55}, {"YIS", 58}, {"YL", 61}, {"YO", 64},
		{"YOL", 68}, {"YON", 71}, {"YOR", 74}, {"YOS", 77}, {"YR", 80}, {"YU", 83},
		{"YUL", 86}, {"YUN", 90}, {"YUR", 93}, {"YUS", 96}, {"YY", 99},
	},
	'Z': {
		{"ZA", 11}, {"ZAL", 14}, {"ZAN", 17}, {"ZAR", 20}, {"ZAS", 24}, {"ZE", 27},
		{"ZEL", 30}, {"ZEN", 33}, {"ZER", 36}, {"ZES", 39}, {"ZH", 42}, {"ZI", 46},
		{"ZIL", 49}, {"ZIN", 52}, {"ZIR", 55}, {"ZIS", 58}, {"ZL", 61}, {"ZO", 64},
		{"ZOL", 68}, {"ZON", 71}, {"ZOR", 74}, {"ZOS", 77}, {"ZR", 80}, {"ZU", 83},
		{"ZUL", 86}, {"ZUN", 90}, {"ZUR", 93}, {"ZUS", 96}, {"ZY", 99},
	},
}
