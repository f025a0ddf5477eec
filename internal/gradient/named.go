package gradient

// namedColors is the SVG named color set, channels normalized to [0,1].
var namedColors = map[string]Color{
	"aliceblue":            {R: 0.941176, G: 0.972549, B: 1, A: 1},
	"antiquewhite":         {R: 0.980392, G: 0.921569, B: 0.843137, A: 1},
	"aqua":                 {R: 0, G: 1, B: 1, A: 1},
	"aquamarine":           {R: 0.498039, G: 1, B: 0.831373, A: 1},
	"azure":                {R: 0.941176, G: 1, B: 1, A: 1},
	"beige":                {R: 0.960784, G: 0.960784, B: 0.862745, A: 1},
	"bisque":               {R: 1, G: 0.894118, B: 0.768627, A: 1},
	"black":                {R: 0, G: 0, B: 0, A: 1},
	"blanchedalmond":       {R: 1, G: 0.921569, B: 0.803922, A: 1},
	"blue":                 {R: 0, G: 0, B: 1, A: 1},
	"blueviolet":           {R: 0.541176, G: 0.168627, B: 0.886275, A: 1},
	"brown":                {R: 0.647059, G: 0.164706, B: 0.164706, A: 1},
	"burlywood":            {R: 0.870588, G: 0.721569, B: 0.529412, A: 1},
	"cadetblue":            {R: 0.372549, G: 0.619608, B: 0.627451, A: 1},
	"chartreuse":           {R: 0.498039, G: 1, B: 0, A: 1},
	"chocolate":            {R: 0.823529, G: 0.411765, B: 0.117647, A: 1},
	"coral":                {R: 1, G: 0.498039, B: 0.313725, A: 1},
	"cornflowerblue":       {R: 0.392157, G: 0.584314, B: 0.929412, A: 1},
	"cornsilk":             {R: 1, G: 0.972549, B: 0.862745, A: 1},
	"crimson":              {R: 0.862745, G: 0.078431, B: 0.235294, A: 1},
	"cyan":                 {R: 0, G: 1, B: 1, A: 1},
	"darkblue":             {R: 0, G: 0, B: 0.545098, A: 1},
	"darkcyan":             {R: 0, G: 0.545098, B: 0.545098, A: 1},
	"darkgoldenrod":        {R: 0.721569, G: 0.52549, B: 0.043137, A: 1},
	"darkgray":             {R: 0.662745, G: 0.662745, B: 0.662745, A: 1},
	"darkgrey":             {R: 0.662745, G: 0.662745, B: 0.662745, A: 1},
	"darkgreen":            {R: 0, G: 0.392157, B: 0, A: 1},
	"darkkhaki":            {R: 0.741176, G: 0.717647, B: 0.419608, A: 1},
	"darkmagenta":          {R: 0.545098, G: 0, B: 0.545098, A: 1},
	"darkolivegreen":       {R: 0.333333, G: 0.419608, B: 0.184314, A: 1},
	"darkorange":           {R: 1, G: 0.54902, B: 0, A: 1},
	"darkorchid":           {R: 0.6, G: 0.196078, B: 0.8, A: 1},
	"darkred":              {R: 0.545098, G: 0, B: 0, A: 1},
	"darksalmon":           {R: 0.913725, G: 0.588235, B: 0.478431, A: 1},
	"darkseagreen":         {R: 0.560784, G: 0.737255, B: 0.560784, A: 1},
	"darkslateblue":        {R: 0.282353, G: 0.239216, B: 0.545098, A: 1},
	"darkslategray":        {R: 0.184314, G: 0.309804, B: 0.309804, A: 1},
	"darkslategrey":        {R: 0.184314, G: 0.309804, B: 0.309804, A: 1},
	"darkturquoise":        {R: 0, G: 0.807843, B: 0.819608, A: 1},
	"darkviolet":           {R: 0.580392, G: 0, B: 0.827451, A: 1},
	"deeppink":             {R: 1, G: 0.078431, B: 0.576471, A: 1},
	"deepskyblue":          {R: 0, G: 0.74902, B: 1, A: 1},
	"dimgray":              {R: 0.411765, G: 0.411765, B: 0.411765, A: 1},
	"dimgrey":              {R: 0.411765, G: 0.411765, B: 0.411765, A: 1},
	"dodgerblue":           {R: 0.117647, G: 0.564706, B: 1, A: 1},
	"firebrick":            {R: 0.698039, G: 0.133333, B: 0.133333, A: 1},
	"floralwhite":          {R: 1, G: 0.980392, B: 0.941176, A: 1},
	"forestgreen":          {R: 0.133333, G: 0.545098, B: 0.133333, A: 1},
	"fuchsia":              {R: 1, G: 0, B: 1, A: 1},
	"gainsboro":            {R: 0.862745, G: 0.862745, B: 0.862745, A: 1},
	"ghostwhite":           {R: 0.972549, G: 0.972549, B: 1, A: 1},
	"gold":                 {R: 1, G: 0.843137, B: 0, A: 1},
	"goldenrod":            {R: 0.854902, G: 0.647059, B: 0.12549, A: 1},
	"gray":                 {R: 0.501961, G: 0.501961, B: 0.501961, A: 1},
	"grey":                 {R: 0.501961, G: 0.501961, B: 0.501961, A: 1},
	"green":                {R: 0, G: 0.501961, B: 0, A: 1},
	"greenyellow":          {R: 0.678431, G: 1, B: 0.184314, A: 1},
	"honeydew":             {R: 0.941176, G: 1, B: 0.941176, A: 1},
	"hotpink":              {R: 1, G: 0.411765, B: 0.705882, A: 1},
	"indianred":            {R: 0.803922, G: 0.360784, B: 0.360784, A: 1},
	"indigo":               {R: 0.294118, G: 0, B: 0.509804, A: 1},
	"ivory":                {R: 1, G: 1, B: 0.941176, A: 1},
	"khaki":                {R: 0.941176, G: 0.901961, B: 0.54902, A: 1},
	"lavender":             {R: 0.901961, G: 0.901961, B: 0.980392, A: 1},
	"lavenderblush":        {R: 1, G: 0.941176, B: 0.960784, A: 1},
	"lawngreen":            {R: 0.486275, G: 0.988235, B: 0, A: 1},
	"lemonchiffon":         {R: 1, G: 0.980392, B: 0.803922, A: 1},
	"lightblue":            {R: 0.678431, G: 0.847059, B: 0.901961, A: 1},
	"lightcoral":           {R: 0.941176, G: 0.501961, B: 0.501961, A: 1},
	"lightcyan":            {R: 0.878431, G: 1, B: 1, A: 1},
	"lightgoldenrodyellow": {R: 0.980392, G: 0.980392, B: 0.823529, A: 1},
	"lightgray":            {R: 0.827451, G: 0.827451, B: 0.827451, A: 1},
	"lightgrey":            {R: 0.827451, G: 0.827451, B: 0.827451, A: 1},
	"lightgreen":           {R: 0.564706, G: 0.933333, B: 0.564706, A: 1},
	"lightpink":            {R: 1, G: 0.713725, B: 0.756863, A: 1},
	"lightsalmon":          {R: 1, G: 0.627451, B: 0.478431, A: 1},
	"lightseagreen":        {R: 0.12549, G: 0.698039, B: 0.666667, A: 1},
	"lightskyblue":         {R: 0.529412, G: 0.807843, B: 0.980392, A: 1},
	"lightslategray":       {R: 0.466667, G: 0.533333, B: 0.6, A: 1},
	"lightslategrey":       {R: 0.466667, G: 0.533333, B: 0.6, A: 1},
	"lightsteelblue":       {R: 0.690196, G: 0.768627, B: 0.870588, A: 1},
	"lightyellow":          {R: 1, G: 1, B: 0.878431, A: 1},
	"lime":                 {R: 0, G: 1, B: 0, A: 1},
	"limegreen":            {R: 0.196078, G: 0.803922, B: 0.196078, A: 1},
	"linen":                {R: 0.980392, G: 0.941176, B: 0.901961, A: 1},
	"magenta":              {R: 1, G: 0, B: 1, A: 1},
	"maroon":               {R: 0.501961, G: 0, B: 0, A: 1},
	"mediumaquamarine":     {R: 0.4, G: 0.803922, B: 0.666667, A: 1},
	"mediumblue":           {R: 0, G: 0, B: 0.803922, A: 1},
	"mediumorchid":         {R: 0.729412, G: 0.333333, B: 0.827451, A: 1},
	"mediumpurple":         {R: 0.576471, G: 0.439216, B: 0.847059, A: 1},
	"mediumseagreen":       {R: 0.235294, G: 0.701961, B: 0.443137, A: 1},
	"mediumslateblue":      {R: 0.482353, G: 0.407843, B: 0.933333, A: 1},
	"mediumspringgreen":    {R: 0, G: 0.980392, B: 0.603922, A: 1},
	"mediumturquoise":      {R: 0.282353, G: 0.819608, B: 0.8, A: 1},
	"mediumvioletred":      {R: 0.780392, G: 0.082353, B: 0.521569, A: 1},
	"midnightblue":         {R: 0.098039, G: 0.098039, B: 0.439216, A: 1},
	"mintcream":            {R: 0.960784, G: 1, B: 0.980392, A: 1},
	"mistyrose":            {R: 1, G: 0.894118, B: 0.882353, A: 1},
	"moccasin":             {R: 1, G: 0.894118, B: 0.709804, A: 1},
	"navajowhite":          {R: 1, G: 0.870588, B: 0.678431, A: 1},
	"navy":                 {R: 0, G: 0, B: 0.501961, A: 1},
	"oldlace":              {R: 0.992157, G: 0.960784, B: 0.901961, A: 1},
	"olive":                {R: 0.501961, G: 0.501961, B: 0, A: 1},
	"olivedrab":            {R: 0.419608, G: 0.556863, B: 0.137255, A: 1},
	"orange":               {R: 1, G: 0.647059, B: 0, A: 1},
	"orangered":            {R: 1, G: 0.270588, B: 0, A: 1},
	"orchid":               {R: 0.854902, G: 0.439216, B: 0.839216, A: 1},
	"palegoldenrod":        {R: 0.933333, G: 0.909804, B: 0.666667, A: 1},
	"palegreen":            {R: 0.596078, G: 0.984314, B: 0.596078, A: 1},
	"paleturquoise":        {R: 0.686275, G: 0.933333, B: 0.933333, A: 1},
	"palevioletred":        {R: 0.847059, G: 0.439216, B: 0.576471, A: 1},
	"papayawhip":           {R: 1, G: 0.937255, B: 0.835294, A: 1},
	"peachpuff":            {R: 1, G: 0.854902, B: 0.72549, A: 1},
	"peru":                 {R: 0.803922, G: 0.521569, B: 0.247059, A: 1},
	"pink":                 {R: 1, G: 0.752941, B: 0.796078, A: 1},
	"plum":                 {R: 0.866667, G: 0.627451, B: 0.866667, A: 1},
	"powderblue":           {R: 0.690196, G: 0.878431, B: 0.901961, A: 1},
	"purple":               {R: 0.501961, G: 0, B: 0.501961, A: 1},
	"red":                  {R: 1, G: 0, B: 0, A: 1},
	"rosybrown":            {R: 0.737255, G: 0.560784, B: 0.560784, A: 1},
	"royalblue":            {R: 0.254902, G: 0.411765, B: 0.882353, A: 1},
	"saddlebrown":          {R: 0.545098, G: 0.270588, B: 0.07451, A: 1},
	"salmon":               {R: 0.980392, G: 0.501961, B: 0.447059, A: 1},
	"sandybrown":           {R: 0.956863, G: 0.643137, B: 0.376471, A: 1},
	"seagreen":             {R: 0.180392, G: 0.545098, B: 0.341176, A: 1},
	"seashell":             {R: 1, G: 0.960784, B: 0.933333, A: 1},
	"sienna":               {R: 0.627451, G: 0.321569, B: 0.176471, A: 1},
	"silver":               {R: 0.752941, G: 0.752941, B: 0.752941, A: 1},
	"skyblue":              {R: 0.529412, G: 0.807843, B: 0.921569, A: 1},
	"slateblue":            {R: 0.415686, G: 0.352941, B: 0.803922, A: 1},
	"slategray":            {R: 0.439216, G: 0.501961, B: 0.564706, A: 1},
	"slategrey":            {R: 0.439216, G: 0.501961, B: 0.564706, A: 1},
	"snow":                 {R: 1, G: 0.980392, B: 0.980392, A: 1},
	"springgreen":          {R: 0, G: 1, B: 0.498039, A: 1},
	"steelblue":            {R: 0.27451, G: 0.509804, B: 0.705882, A: 1},
	"tan":                  {R: 0.823529, G: 0.705882, B: 0.54902, A: 1},
	"teal":                 {R: 0, G: 0.501961, B: 0.501961, A: 1},
	"thistle":              {R: 0.847059, G: 0.74902, B: 0.847059, A: 1},
	"tomato":               {R: 1, G: 0.388235, B: 0.278431, A: 1},
	"turquoise":            {R: 0.25098, G: 0.878431, B: 0.815686, A: 1},
	"violet":               {R: 0.933333, G: 0.509804, B: 0.933333, A: 1},
	"wheat":                {R: 0.960784, G: 0.870588, B: 0.701961, A: 1},
	"white":                {R: 1, G: 1, B: 1, A: 1},
	"whitesmoke":           {R: 0.960784, G: 0.960784, B: 0.960784, A: 1},
	"yellow":               {R: 1, G: 1, B: 0, A: 1},
	"yellowgreen":          {R: 0.603922, G: 0.803922, B: 0.196078, A: 1},
}
